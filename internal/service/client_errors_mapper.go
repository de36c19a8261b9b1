// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/app"
)

// mapAdapterError adds the business error named by the server's error_type
// to an adapter error. The adapter error stays in the chain, so both the
// business error and the error kind match with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	var business error
	switch apiErr.ErrorType {
	case app.ErrorTypeMissingFields:
		business = ErrMissingFields
	case app.ErrorTypeUserNotFound:
		business = ErrUserNotFound
	case app.ErrorTypeIncorrectPassword:
		business = ErrIncorrectPassword
	case app.ErrorTypeInactiveUser:
		business = ErrInactiveUser
	case app.ErrorTypeUserExists:
		business = ErrUserExists
	case app.ErrorTypeMT5NotConfigured:
		business = ErrMT5NotConfigured
	case app.ErrorTypeMT5NotConnected:
		business = ErrMT5NotConnected
	case app.ErrorTypeExecutionState:
		business = ErrExecutionState
	case app.ErrorTypeTerminalFailure:
		business = ErrTerminalRejected
	default:
		return err
	}

	return fmt.Errorf("%w: %w", business, err)
}
