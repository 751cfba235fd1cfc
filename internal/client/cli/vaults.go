package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/mkravchenko/linkvault/internal/client/api"
	"github.com/mkravchenko/linkvault/internal/common"
)

// refreshVaults loads the vaults owned by the current user. An empty list is
// a valid answer: it clears the selection, which disables saving.
func (a *App) refreshVaults(ctx context.Context) {
	if !a.isLoggedIn() {
		a.state = a.state.WithBanner(BannerError, "Not logged in")
		return
	}

	vaults, err := a.vaultService.List(ctx, a.state.Session)
	if err != nil {
		a.handleRemoteError(err)
		return
	}

	a.state = a.state.WithVaults(vaults)
	if len(vaults) == 0 {
		fmt.Fprintln(a.out, "You have no vaults yet; saving is disabled.")
		return
	}
	for i, v := range vaults {
		marker := " "
		if i == a.state.Selected {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %d. %s\n", marker, i+1, v.Name)
	}
}

// selectVault picks a vault by its 1-based list position.
func (a *App) selectVault(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: select <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.state.Vaults) {
		a.state = a.state.WithBanner(BannerError, "No such vault")
		return
	}
	a.state = a.state.WithSelection(n - 1)
}

// save appends the captured page to the selected vault.
func (a *App) save(ctx context.Context) {
	if !a.state.CanSave() {
		a.state = a.state.WithBanner(BannerError, "Select a vault first")
		return
	}
	if a.page.URL == "" {
		a.state = a.state.WithBanner(BannerError, "No page to capture (set -t and -u)")
		return
	}

	vault, _ := a.state.SelectedVault()

	link, err := a.vaultService.AppendLink(ctx, a.state.Session, vault.ID, a.page)
	if err != nil {
		a.handleRemoteError(err)
		return
	}

	a.state = a.state.WithBanner(BannerSuccess,
		fmt.Sprintf("Saved %q to %s", link.Title, vault.Name))
}

// open prints the selected vault's links.
func (a *App) open(ctx context.Context) {
	vault, ok := a.state.SelectedVault()
	if !ok {
		a.state = a.state.WithBanner(BannerError, "Select a vault first")
		return
	}

	full, err := a.vaultService.Get(ctx, a.state.Session, vault.ID)
	if err != nil {
		a.handleRemoteError(err)
		return
	}

	if len(full.Links) == 0 {
		fmt.Fprintf(a.out, "%s is empty.\n", full.Name)
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, l := range full.Links {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Title, l.URL, l.CreatedAt.Format("2006-01-02"))
	}
	_ = w.Flush()
}

// handleRemoteError translates service errors into banner text. An expired
// session additionally forces the login view; the store has already been
// cleared by the session guard at this point.
func (a *App) handleRemoteError(err error) {
	switch {
	case errors.Is(err, common.ErrSessionExpired):
		a.state = a.state.LoggedOut(Banner{Kind: BannerError, Text: "Session expired, please log in again"})
	case errors.Is(err, api.ErrConflict):
		a.state = a.state.WithBanner(BannerError, "Vault was modified by another client, try again")
	case errors.Is(err, api.ErrUnavailable):
		a.state = a.state.WithBanner(BannerError, "Server unavailable")
	default:
		a.state = a.state.WithBanner(BannerError, err.Error())
	}
}
