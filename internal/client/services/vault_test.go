package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/common"
	"github.com/mkravchenko/linkvault/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	SignInRet *models.Session
	SignInErr error

	ListRet []models.VaultSummary
	ListErr error

	GetRet *models.Vault
	GetErr error

	UpdateErr error

	// recorded arguments
	LastSignInEmail    string
	LastSignInPassword []byte

	LastListToken string
	LastListOwner string

	LastGetToken string
	LastGetID    string

	LastUpdateID    string
	LastUpdateLinks []models.Link
	LastUpdateTime  string
}

func (f *fakeClient) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	f.LastSignInEmail = email
	f.LastSignInPassword = append([]byte(nil), password...)
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) ListVaults(ctx context.Context, token string, ownerID string) ([]models.VaultSummary, error) {
	f.LastListToken = token
	f.LastListOwner = ownerID
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetVault(ctx context.Context, token string, id string) (*models.Vault, error) {
	f.LastGetToken = token
	f.LastGetID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) UpdateVaultLinks(ctx context.Context, token string, id string, links []models.Link, updateTime string) error {
	f.LastUpdateID = id
	f.LastUpdateLinks = append([]models.Link(nil), links...)
	f.LastUpdateTime = updateTime
	return f.UpdateErr
}

// fakeSessions records Clear calls; Load/Save are unused by these tests.
type fakeSessions struct {
	ClearCount int
	ClearErr   error
}

func (f *fakeSessions) Load(ctx context.Context) (*models.Session, error) { return nil, nil }
func (f *fakeSessions) Save(ctx context.Context, s *models.Session) error { return nil }
func (f *fakeSessions) Clear(ctx context.Context) error {
	f.ClearCount++
	return f.ClearErr
}

func newVaultService(fc *fakeClient, fs *fakeSessions) VaultService {
	return NewVaultService(fc, NewSessionGuard(fs, testLogger()), testLogger())
}

var sess = &models.Session{Token: "t", UserID: "u1", Email: "user@example.com"}

// ---- List ----

func TestList_PassesSessionIdentity(t *testing.T) {
	fc := &fakeClient{ListRet: []models.VaultSummary{{ID: "v1", Name: "Reading"}}}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	vaults, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, "t", fc.LastListToken)
	require.Equal(t, "u1", fc.LastListOwner)
	require.Equal(t, []models.VaultSummary{{ID: "v1", Name: "Reading"}}, vaults)
	require.Zero(t, fs.ClearCount)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	fc := &fakeClient{ListRet: []models.VaultSummary{}}
	svc := newVaultService(fc, &fakeSessions{})

	vaults, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Empty(t, vaults)
}

func TestList_AuthExpiredClearsSession(t *testing.T) {
	fc := &fakeClient{ListErr: api.ErrAuthExpired}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	_, err := svc.List(context.Background(), sess)
	require.ErrorIs(t, err, common.ErrSessionExpired)
	require.Equal(t, 1, fs.ClearCount)
}

func TestList_OtherErrorsPassThroughWithoutClearing(t *testing.T) {
	fc := &fakeClient{ListErr: errors.New("backend hiccup")}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	_, err := svc.List(context.Background(), sess)
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrSessionExpired)
	require.Zero(t, fs.ClearCount)
}

// ---- AppendLink ----

func TestAppendLink_AppendsExactlyOneAtTheEnd(t *testing.T) {
	existing := []models.Link{
		{ID: "link_1", Title: "Old", URL: "https://old.example"},
	}
	fc := &fakeClient{GetRet: &models.Vault{
		ID: "v1", Name: "Reading", OwnerID: "u1",
		Links: existing, UpdateTime: "2026-08-29T10:00:00Z",
	}}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	fixed := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
	old := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = old }()

	page := models.Page{Title: "Example", URL: "https://example.com"}
	link, err := svc.AppendLink(context.Background(), sess, "v1", page)
	require.NoError(t, err)

	require.Equal(t, fmt.Sprintf("link_%d", fixed.UnixMilli()), link.ID)
	require.Equal(t, "Example", link.Title)
	require.Equal(t, "https://example.com", link.URL)
	require.Equal(t, "u1", link.CreatedBy)
	require.Equal(t, fixed, link.CreatedAt)
	require.Equal(t, fixed, link.UpdatedAt)
	require.Empty(t, link.Description)

	require.Equal(t, "v1", fc.LastUpdateID)
	require.Len(t, fc.LastUpdateLinks, 2)
	require.Equal(t, "link_1", fc.LastUpdateLinks[0].ID)
	require.Equal(t, *link, fc.LastUpdateLinks[1])
	require.Equal(t, "2026-08-29T10:00:00Z", fc.LastUpdateTime)
}

func TestAppendLink_EmptyVaultYieldsOneLink(t *testing.T) {
	fc := &fakeClient{GetRet: &models.Vault{ID: "v1", OwnerID: "u1", UpdateTime: "2026-08-29T10:00:00Z"}}
	svc := newVaultService(fc, &fakeSessions{})

	page := models.Page{Title: "Example", URL: "https://example.com"}
	link, err := svc.AppendLink(context.Background(), sess, "v1", page)
	require.NoError(t, err)

	require.Len(t, fc.LastUpdateLinks, 1)
	require.Equal(t, *link, fc.LastUpdateLinks[0])
	require.Equal(t, "u1", link.CreatedBy)
}

func TestAppendLink_ReadFailureAbortsBeforeWrite(t *testing.T) {
	fc := &fakeClient{GetErr: errors.New("boom")}
	svc := newVaultService(fc, &fakeSessions{})

	_, err := svc.AppendLink(context.Background(), sess, "v1", models.Page{URL: "https://x"})
	require.Error(t, err)
	require.Empty(t, fc.LastUpdateID, "no write may happen after a failed read")
}

func TestAppendLink_WriteFailureIsFatalForThisCall(t *testing.T) {
	fc := &fakeClient{
		GetRet:    &models.Vault{ID: "v1", OwnerID: "u1"},
		UpdateErr: errors.New("backend hiccup"),
	}
	svc := newVaultService(fc, &fakeSessions{})

	_, err := svc.AppendLink(context.Background(), sess, "v1", models.Page{URL: "https://x"})
	require.Error(t, err)
}

func TestAppendLink_ConflictSurvivesWrapping(t *testing.T) {
	fc := &fakeClient{
		GetRet:    &models.Vault{ID: "v1", OwnerID: "u1", UpdateTime: "2026-08-29T10:00:00Z"},
		UpdateErr: api.ErrConflict,
	}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	_, err := svc.AppendLink(context.Background(), sess, "v1", models.Page{URL: "https://x"})
	require.ErrorIs(t, err, api.ErrConflict)
	require.Zero(t, fs.ClearCount)
}

func TestAppendLink_AuthExpiredOnWriteClearsSession(t *testing.T) {
	fc := &fakeClient{
		GetRet:    &models.Vault{ID: "v1", OwnerID: "u1"},
		UpdateErr: api.ErrAuthExpired,
	}
	fs := &fakeSessions{}
	svc := newVaultService(fc, fs)

	_, err := svc.AppendLink(context.Background(), sess, "v1", models.Page{URL: "https://x"})
	require.ErrorIs(t, err, common.ErrSessionExpired)
	require.Equal(t, 1, fs.ClearCount)
}

// ---- Get ----

func TestGet_Delegates(t *testing.T) {
	fc := &fakeClient{GetRet: &models.Vault{ID: "v1", Name: "Reading"}}
	svc := newVaultService(fc, &fakeSessions{})

	v, err := svc.Get(context.Background(), sess, "v1")
	require.NoError(t, err)
	require.Equal(t, "v1", v.ID)
	require.Equal(t, "t", fc.LastGetToken)
}
