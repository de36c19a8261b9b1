package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/utils"
)

// maxBodySize limits JSON request bodies.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into v. Any failure is reported as
// [service.ErrInvalidDataProvided].
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
	if errors.Is(err, io.EOF) {
		err = errEmptyBody
	}
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// userID returns the id the auth middleware stored for the request.
func userID(r *http.Request) (int64, error) {
	id, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		return 0, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, errNoUserInContext)
	}
	return id, nil
}
