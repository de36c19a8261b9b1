package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is sent when a response value cannot be encoded. It
// keeps the error_type/message shape every API error uses.
const marshalFailureBody = `{"error_type":"internal_error","message":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode. API responses carry
// tokens and profile data, so they are marked as not cacheable.
//
// When data cannot be encoded the client gets a 500 with a JSON error body
// and the encoding error is returned for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		setJSONHeaders(w.Header())
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	setJSONHeaders(w.Header())
	w.WriteHeader(statusCode)

	return w.Write(body)
}

func setJSONHeaders(h http.Header) {
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")
}
