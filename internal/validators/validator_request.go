package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// RequestValidator checks API request bodies. Struct tags are validated
// with go-playground/validator and cross-field rules (password
// confirmation) are applied on top. Failures are returned as
// *ValidationError keyed by JSON field name.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate validates obj, a struct or a pointer to one. When fields are
// given, only errors of those JSON fields are reported.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	verr := &ValidationError{}

	if err := v.validate.StructCtx(ctx, obj); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
	}

	crossFieldRules(obj, verr)

	if len(fields) > 0 {
		keep := make(map[string][]string)
		for _, f := range fields {
			if msgs, ok := verr.Fields[f]; ok {
				keep[f] = msgs
			}
		}
		verr.Fields = keep
	}

	if verr.empty() {
		return nil
	}
	return verr
}

func crossFieldRules(obj any, verr *ValidationError) {
	switch value := obj.(type) {
	case models.RegisterCredentials:
		crossFieldRules(&value, verr)
	case *models.RegisterCredentials:
		if value.PasswordConfirm != "" && value.Password != value.PasswordConfirm {
			verr.Add("password", app.MsgPasswordsDidNotMatch)
		}

	case models.PasswordChange:
		crossFieldRules(&value, verr)
	case *models.PasswordChange:
		if value.NewPasswordConfirm != "" && value.NewPassword != value.NewPasswordConfirm {
			verr.Add(app.NonFieldErrorsKey, app.MsgNewPasswordsDidNotMatch)
		}

	case models.PasswordReset:
		crossFieldRules(&value, verr)
	case *models.PasswordReset:
		if value.NewPasswordConfirm != "" && value.NewPassword != value.NewPasswordConfirm {
			verr.Add(app.NonFieldErrorsKey, app.MsgNewPasswordsDidNotMatch)
		}
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// fieldMessage renders a field error the way the API words them.
func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return app.MsgFieldRequired
	case "number":
		return app.MsgDigitsOnly
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "email":
		return "Enter a valid email address."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
