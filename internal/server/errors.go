// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means no API listener could be configured.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListenerFailed wraps a listener that stopped on its own.
	errListenerFailed = errors.New("listener stopped unexpectedly")

	// errShutdownFailed wraps a listener that did not drain in time.
	errShutdownFailed = errors.New("listener shutdown failed")

	// errRunnerFailed wraps a background runner that returned an error.
	errRunnerFailed = errors.New("background runner failed")
)
