package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mkravchenko/linkvault/internal/client/models"
)

// MsgInvalidCredentials is the uniform user-facing message for the known
// credential rejection codes.
const MsgInvalidCredentials = "Invalid email or password"

// credentialCodes are identity error codes that all mean the same thing to
// the user: the email/password pair was not accepted.
var credentialCodes = map[string]struct{}{
	"INVALID_PASSWORD":          {},
	"EMAIL_NOT_FOUND":           {},
	"INVALID_LOGIN_CREDENTIALS": {},
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

// SignIn exchanges credentials for a session via the identity endpoint.
// It never touches local storage; persisting the session is the caller's
// responsibility. Credential rejections come back as *AuthError, transport
// failures as ErrUnavailable.
func (c *RESTClient) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	endpoint := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s",
		c.opts.IdentityEndpoint, url.QueryEscape(c.opts.APIKey))

	body := signInRequest{Email: email, Password: string(password), ReturnSecureToken: true}

	resp, err := c.doJSON(ctx, http.MethodPost, endpoint, "", body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, identityError(resp)
	}

	var sr signInResponse
	if err := decodeJSON(resp, &sr); err != nil {
		return nil, err
	}
	if sr.IDToken == "" || sr.LocalID == "" {
		return nil, fmt.Errorf("identity response missing token or user id")
	}

	return &models.Session{Token: sr.IDToken, UserID: sr.LocalID, Email: sr.Email}, nil
}

// identityError turns a non-200 identity response into an *AuthError.
// Identity messages look like "INVALID_PASSWORD" or "TOO_MANY_ATTEMPTS : ...";
// the leading code decides whether the message is normalized.
func identityError(resp *http.Response) error {
	var se statusError
	if err := decodeJSON(resp, &se); err != nil {
		return fmt.Errorf("identity error (%s)", resp.Status)
	}

	msg := se.Error.Message
	code := msg
	if fields := strings.Fields(msg); len(fields) > 0 {
		code = fields[0]
	}

	if _, ok := credentialCodes[code]; ok {
		return &AuthError{Code: code, Message: MsgInvalidCredentials}
	}
	return &AuthError{Code: code, Message: msg}
}
