// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
)

// formError returns the text a form shows for err: the server's own message
// when it sent one, otherwise fallback.
func formError(err error, fallback string) string {
	return adapter.UserMessage(err, fallback)
}

func isSessionTerminated(err error) bool {
	return errors.Is(err, adapter.ErrSessionTerminated)
}

// sessionExpired ends the signed-in program; the caller reopens the login
// page with a notice.
func sessionExpired() tea.Msg {
	return sessionExpiredMsg{}
}
