package cli

import (
	"context"

	"github.com/mkravchenko/linkvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials, signs in, persists the session, and loads
// the vault list. Blank fields fail locally with a validation error before
// any network call is made; the password is wiped before returning.
func (a *App) login(ctx context.Context) {
	if a.isLoggedIn() {
		a.state = a.state.WithBanner(BannerError, "Already logged in")
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.state = a.state.WithBanner(BannerError, err.Error())
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.state = a.state.WithBanner(BannerError, err.Error())
		return
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.SignIn(ctx, email, password)
	if err != nil {
		a.state = a.state.WithBanner(BannerError, err.Error())
		return
	}

	// The auth service never persists; the session becomes durable here.
	if err := a.sessions.Save(ctx, s); err != nil {
		a.log.Error(ctx, "failed to save session", "error", err)
		a.state = a.state.WithBanner(BannerError, "Could not save session")
		return
	}

	a.state = a.state.LoggedIn(s).WithBanner(BannerSuccess, "Logged in as "+s.Email)
	a.refreshVaults(ctx)
}

// logout clears the stored session and returns to the login view. Logging
// out twice is harmless.
func (a *App) logout(ctx context.Context) {
	if err := a.sessions.Clear(ctx); err != nil {
		a.state = a.state.WithBanner(BannerError, err.Error())
		return
	}
	a.state = a.state.LoggedOut(Banner{Kind: BannerSuccess, Text: "Logged out"})
}
