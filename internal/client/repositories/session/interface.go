// Package session persists the authenticated session across popup restarts.
// The stored session is the sole source of truth for "is the user logged in".
package session

import (
	"context"

	"github.com/mkravchenko/linkvault/internal/client/models"
)

// Repository stores at most one session.
//
// Contract:
//   - Load returns (nil, nil) when no session is stored. A session with any
//     field missing counts as absent.
//   - Save persists all fields atomically; a partial session is rejected
//     before anything is written.
//   - Clear removes the stored session and is idempotent.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}
