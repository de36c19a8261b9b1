package utils

import "github.com/google/uuid"

// NewID returns a time-ordered v7 UUID for token ids, trace ids and object
// keys. A failed clock read falls back to a random v4.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewResetToken returns a random v4 UUID. A v7 id would reveal when the
// reset was requested.
func NewResetToken() string {
	return uuid.NewString()
}
