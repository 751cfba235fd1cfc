package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkravchenko/linkvault/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(identityURL, storeURL string) *RESTClient {
	return NewRESTClient(Options{
		IdentityEndpoint: identityURL,
		StoreEndpoint:    storeURL,
		APIKey:           "test-key",
		ProjectID:        "test-project",
		Timeout:          5 * time.Second,
	}, testLogger())
}

func identityErrorBody(message string) map[string]any {
	return map[string]any{"error": map[string]any{"code": 400, "message": message}}
}

func TestSignIn_Success(t *testing.T) {
	var gotPath string
	var gotBody signInRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(signInResponse{
			IDToken: "tok123", LocalID: "u1", Email: "user@example.com",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	s, err := c.SignIn(context.Background(), "user@example.com", []byte("secret"))
	require.NoError(t, err)

	require.Equal(t, "/v1/accounts:signInWithPassword?key=test-key", gotPath)
	require.Equal(t, "user@example.com", gotBody.Email)
	require.Equal(t, "secret", gotBody.Password)
	require.True(t, gotBody.ReturnSecureToken)

	require.Equal(t, "tok123", s.Token)
	require.Equal(t, "u1", s.UserID)
	require.Equal(t, "user@example.com", s.Email)
}

func TestSignIn_CredentialRejectionsAreNormalized(t *testing.T) {
	for _, code := range []string{"INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS"} {
		t.Run(code, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(identityErrorBody(code))
			}))
			defer srv.Close()

			c := newTestClient(srv.URL, srv.URL)
			_, err := c.SignIn(context.Background(), "user@example.com", []byte("wrong"))
			require.Error(t, err)
			require.Equal(t, MsgInvalidCredentials, err.Error())

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			require.Equal(t, code, authErr.Code)
		})
	}
}

func TestSignIn_OtherIdentityErrorPassesThroughVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(identityErrorBody("TOO_MANY_ATTEMPTS_TRY_LATER : slow down"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.SignIn(context.Background(), "user@example.com", []byte("pw"))
	require.Error(t, err)
	require.Equal(t, "TOO_MANY_ATTEMPTS_TRY_LATER : slow down", err.Error())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "TOO_MANY_ATTEMPTS_TRY_LATER", authErr.Code)
}

func TestSignIn_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.SignIn(context.Background(), "user@example.com", []byte("pw"))
	require.ErrorIs(t, err, ErrUnavailable)

	var authErr *AuthError
	require.False(t, errors.As(err, &authErr), "transport failure must not look like a credential rejection")
}
