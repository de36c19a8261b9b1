package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: status, Kind: kindOf(status)}

	var body models.ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.ErrorType = body.ErrorType
		apiErr.Message = body.Message
		apiErr.RedirectTo = body.RedirectTo
		apiErr.Fields = body.Fields
	}

	return apiErr
}

func kindOf(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrAuthExpired
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return ErrValidation
	default:
		return ErrServer
	}
}
