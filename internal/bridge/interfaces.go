package bridge

import (
	"context"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// Terminal drives MetaTrader 5 terminals through the bridge service that
// runs next to them. The server never talks to a terminal directly.
type Terminal interface {
	// Verify logs in with the credentials and reports the account figures.
	// Wrong credentials return ErrLoginRejected.
	Verify(ctx context.Context, login Login) (models.TerminalAccount, error)

	// Deals returns the deals closed between from and to.
	Deals(ctx context.Context, login Login, from, to time.Time) ([]models.Deal, error)

	// StartExpert attaches an expert advisor and returns its handle.
	StartExpert(ctx context.Context, login Login, expert Expert) (StartedExpert, error)

	StopExpert(ctx context.Context, handle string) error
	PauseExpert(ctx context.Context, handle string) error
	ResumeExpert(ctx context.Context, handle string) error
}
