package services

import (
	"context"
	"errors"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/client/repositories/session"
	"github.com/mkravchenko/linkvault/internal/common"
	"github.com/mkravchenko/linkvault/internal/logging"
)

// SessionGuard inspects every remote error for an authentication failure.
// On detection it clears the stored session and reports ErrSessionExpired so
// the orchestrator can force the login view. This is the only path besides
// explicit logout that transitions the client back to unauthenticated.
type SessionGuard struct {
	sessions session.Repository
	log      logging.Logger
}

func NewSessionGuard(sessions session.Repository, log logging.Logger) *SessionGuard {
	return &SessionGuard{sessions: sessions, log: log}
}

// Check passes non-auth errors through unchanged. An api.ErrAuthExpired is
// swallowed: the session is cleared and common.ErrSessionExpired returned in
// its place, so no stale response data is processed further up.
func (g *SessionGuard) Check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, api.ErrAuthExpired) {
		return err
	}

	g.log.Warn(ctx, "token rejected by the store, clearing session")
	if cerr := g.sessions.Clear(ctx); cerr != nil {
		g.log.Error(ctx, "failed to clear session", "error", cerr)
	}
	return common.ErrSessionExpired
}
