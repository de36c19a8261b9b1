// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/heartbreaksandvodka/project-plusminus/internal/tui"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// AuthFlow runs the signed-out pages until the user signs in. A
	// non-empty notice is shown on the login page. It returns
	// tui.ErrUserQuit when the user leaves without signing in.
	AuthFlow(ctx context.Context, notice string) (models.User, error)

	// MainLoop runs the signed-in pages and reports how they ended.
	MainLoop(ctx context.Context) (tui.Outcome, error)
}

var (
	_ Client = (*App)(nil)
	_ UI     = (*tui.TUI)(nil)
)
