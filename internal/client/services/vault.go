package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/logging"
)

// timeNow is an indirection over time.Now so tests can pin link IDs and
// timestamps.
var timeNow = time.Now

// VaultService exposes the vault operations the UI drives.
//
// Contract:
//   - List: all vaults owned by the session's user, in backend order. An
//     empty result is a valid answer.
//   - Get: one vault including its embedded links.
//   - AppendLink: read-modify-write append of the captured page. On success
//     the vault holds exactly one more link, provided no concurrent writer
//     intervened; a detected concurrent write surfaces as api.ErrConflict.
//
// Every remote error passes through the SessionGuard, so an expired token
// always comes back as common.ErrSessionExpired with the store cleared.
type VaultService interface {
	List(ctx context.Context, s *models.Session) ([]models.VaultSummary, error)
	Get(ctx context.Context, s *models.Session, vaultID string) (*models.Vault, error)
	AppendLink(ctx context.Context, s *models.Session, vaultID string, page models.Page) (*models.Link, error)
}

type vaultService struct {
	client api.Client
	guard  *SessionGuard
	log    logging.Logger
}

func NewVaultService(client api.Client, guard *SessionGuard, log logging.Logger) VaultService {
	return &vaultService{client: client, guard: guard, log: log}
}

func (v *vaultService) List(ctx context.Context, s *models.Session) ([]models.VaultSummary, error) {
	vaults, err := v.client.ListVaults(ctx, s.Token, s.UserID)
	if err != nil {
		return nil, v.guard.Check(ctx, fmt.Errorf("listing vaults: %w", err))
	}
	return vaults, nil
}

func (v *vaultService) Get(ctx context.Context, s *models.Session, vaultID string) (*models.Vault, error) {
	vault, err := v.client.GetVault(ctx, s.Token, vaultID)
	if err != nil {
		return nil, v.guard.Check(ctx, fmt.Errorf("reading vault: %w", err))
	}
	return vault, nil
}

// AppendLink captures page into the vault: read the document, append a new
// link at the end (no dedup by URL), and write the links field back under
// the revision read in step one. Two round trips; a failed write leaves no
// partial state behind.
func (v *vaultService) AppendLink(ctx context.Context, s *models.Session, vaultID string, page models.Page) (*models.Link, error) {
	vault, err := v.client.GetVault(ctx, s.Token, vaultID)
	if err != nil {
		return nil, v.guard.Check(ctx, fmt.Errorf("reading vault: %w", err))
	}

	now := timeNow()
	link := models.Link{
		ID:        fmt.Sprintf("link_%d", now.UnixMilli()),
		Title:     page.Title,
		URL:       page.URL,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: s.UserID,
	}

	links := append(vault.Links, link)

	if err := v.client.UpdateVaultLinks(ctx, s.Token, vaultID, links, vault.UpdateTime); err != nil {
		return nil, v.guard.Check(ctx, fmt.Errorf("updating vault: %w", err))
	}

	v.log.Info(ctx, "link appended", "vault", vaultID, "link", link.ID)
	return &link, nil
}
