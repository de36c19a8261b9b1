package bridge

import "errors"

var (
	// ErrBridgeDisabled is returned by every call when no bridge URL is
	// configured.
	ErrBridgeDisabled = errors.New("mt5 bridge is not configured")

	// ErrBridgeUnavailable means the bridge or its terminal could not be
	// reached or failed internally.
	ErrBridgeUnavailable = errors.New("mt5 bridge is unavailable")

	// ErrLoginRejected means the terminal refused the credentials.
	ErrLoginRejected = errors.New("mt5 terminal rejected the login")

	// ErrExpertNotFound means the bridge does not know the handle.
	ErrExpertNotFound = errors.New("expert advisor handle is unknown")

	// ErrRequestRejected covers any other refusal by the bridge.
	ErrRequestRejected = errors.New("mt5 bridge rejected the request")
)
