package http

import (
	"errors"
	"net/http"

	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
	"github.com/heartbreaksandvodka/project-plusminus/internal/validators"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// errorRule maps a service or store error to a response. Rules are checked
// in order; field errors sit below the business errors that carry one.
type errorRule struct {
	target error
	status int
	body   models.ErrorBody
}

var errorRules = []errorRule{
	{service.ErrMissingFields, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeMissingFields,
		Message:   app.MsgMissingFields,
	}},
	{service.ErrUserNotFound, http.StatusNotFound, models.ErrorBody{
		ErrorType:  app.ErrorTypeUserNotFound,
		Message:    app.MsgUserNotFound,
		RedirectTo: app.RedirectRegister,
	}},
	{service.ErrIncorrectPassword, http.StatusUnauthorized, models.ErrorBody{
		ErrorType: app.ErrorTypeIncorrectPassword,
		Message:   app.MsgIncorrectPassword,
	}},
	{service.ErrInactiveUser, http.StatusUnauthorized, models.ErrorBody{
		ErrorType: app.ErrorTypeInactiveUser,
		Message:   app.MsgInactiveUser,
	}},
	{service.ErrUserExists, http.StatusConflict, models.ErrorBody{
		ErrorType:  app.ErrorTypeUserExists,
		Message:    app.MsgUserExists,
		RedirectTo: app.RedirectLogin,
	}},
	{service.ErrTokenRevoked, http.StatusUnauthorized, models.ErrorBody{
		ErrorType: app.ErrorTypeTokenInvalid,
		Message:   app.MsgTokenIsExpiredOrInvalid,
	}},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, models.ErrorBody{
		ErrorType: app.ErrorTypeTokenInvalid,
		Message:   app.MsgTokenIsExpiredOrInvalid,
	}},
	{service.ErrPictureUploadDisabled, http.StatusBadRequest, models.ErrorBody{
		Fields: map[string][]string{service.ProfilePictureField: {app.MsgPictureUploadDisabled}},
	}},
	{store.ErrMT5AccountNotFound, http.StatusNotFound, models.ErrorBody{
		ErrorType: app.ErrorTypeMT5NotConfigured,
		Message:   app.MsgMT5SetUpFirst,
	}},
	{service.ErrMT5NotConnected, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeMT5NotConnected,
		Message:   app.MsgMT5NotConnected,
	}},
	{store.ErrExecutionNotFound, http.StatusNotFound, models.ErrorBody{
		ErrorType: app.ErrorTypeNotFound,
		Message:   app.MsgExecutionNotFound,
	}},
	{service.ErrAlgorithmNotRunning, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeExecutionState,
		Message:   app.MsgAlgorithmNotRunning,
	}},
	{service.ErrAlgorithmNotPaused, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeExecutionState,
		Message:   app.MsgAlgorithmNotPaused,
	}},
	{service.ErrAlgorithmNotActive, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeExecutionState,
		Message:   app.MsgAlgorithmNotActive,
	}},
	{service.ErrStoredPasswordUnreadable, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeTerminalFailure,
		Message:   app.MsgStoredPasswordUnreadable,
	}},
	{service.ErrTerminalRejected, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeTerminalFailure,
		Message:   app.MsgConnectionTestFailed,
	}},
	{service.ErrTerminalUnavailable, http.StatusServiceUnavailable, models.ErrorBody{
		ErrorType: app.ErrorTypeUnavailable,
		Message:   app.MsgTerminalUnavailable,
	}},
	{errRequestTooLarge, http.StatusRequestEntityTooLarge, models.ErrorBody{
		ErrorType: app.ErrorTypeTooLarge,
		Message:   app.MsgRequestTooLarge,
		Fields:    map[string][]string{service.ProfilePictureField: {app.MsgPictureTooLarge}},
	}},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, models.ErrorBody{
		ErrorType: app.ErrorTypeInvalidData,
		Message:   app.MsgInvalidDataProvided,
	}},
	{store.ErrNoUserWasFound, http.StatusNotFound, models.ErrorBody{
		ErrorType: app.ErrorTypeNotFound,
		Message:   app.MsgNotFound,
	}},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, unavailableBody},
	{store.ErrBlacklistUnavailable, http.StatusServiceUnavailable, unavailableBody},
}

var unavailableBody = models.ErrorBody{
	ErrorType: app.ErrorTypeUnavailable,
	Message:   app.MsgServiceUnavailable,
}

// errorResponse returns the status and body written for err.
func errorResponse(err error) (int, models.ErrorBody) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.status, rule.body
		}
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, models.ErrorBody{Fields: verr.Fields}
	}

	return http.StatusInternalServerError, models.ErrorBody{
		ErrorType: app.ErrorTypeInternal,
		Message:   app.MsgInternalServerError,
	}
}

// writeError logs err and writes its mapped response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}

// writeErrorBody writes a fixed error response.
func writeErrorBody(w http.ResponseWriter, status int, body models.ErrorBody) {
	utils.WriteJSON(w, body, status)
}
