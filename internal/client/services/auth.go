// Package services contains the application services for the linkvault
// client: credential sign-in, vault listing and link capture, and the
// session guard that tears down expired sessions.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/common"
	"github.com/mkravchenko/linkvault/internal/logging"
)

// AuthService authenticates the user against the identity endpoint.
//
// SignIn validates inputs locally before any network call and returns the
// resulting session without persisting it; the orchestrator decides when to
// store it. Failed sign-ins leave stored state untouched.
type AuthService interface {
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)
}

type authService struct {
	client api.Client
	log    logging.Logger
}

func NewAuthService(client api.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log}
}

func (a *authService) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	s, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "sign-in failed", "error", err)
		return nil, err
	}

	a.log.Info(ctx, "signed in", "user", s.UserID)
	return s, nil
}
