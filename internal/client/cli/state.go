package cli

import "github.com/mkravchenko/linkvault/internal/client/models"

// The popup UI is modeled as an explicit state machine: the REPL only ever
// projects the current UIState, and every user action produces a new state
// through the pure transition methods below.

type View int

const (
	// ViewLogin is shown while no session exists.
	ViewLogin View = iota
	// ViewMain shows the vault picker and the save action.
	ViewMain
)

type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerSuccess
	BannerError
)

// Banner is the one-line status message under the prompt. Success banners
// are transient (cleared after one render); error banners persist until the
// next action replaces them.
type Banner struct {
	Kind BannerKind
	Text string
}

// UIState is the complete state of the popup. Selected is an index into
// Vaults, -1 when nothing is selected.
type UIState struct {
	View     View
	Session  *models.Session
	Vaults   []models.VaultSummary
	Selected int
	Banner   Banner
}

// InitialState derives the starting state from the stored session: present
// means authenticated, absent means the login view.
func InitialState(s *models.Session) UIState {
	st := UIState{View: ViewLogin, Selected: -1}
	if s != nil {
		st.View = ViewMain
		st.Session = s
	}
	return st
}

// LoggedIn transitions to the main view for the given session.
func (st UIState) LoggedIn(s *models.Session) UIState {
	st.View = ViewMain
	st.Session = s
	st.Vaults = nil
	st.Selected = -1
	return st
}

// LoggedOut wipes all authenticated state and returns to the login view.
func (st UIState) LoggedOut(b Banner) UIState {
	return UIState{View: ViewLogin, Selected: -1, Banner: b}
}

// WithVaults replaces the vault list. The first vault is preselected; an
// empty list leaves nothing selected, which disables saving.
func (st UIState) WithVaults(vaults []models.VaultSummary) UIState {
	st.Vaults = vaults
	if len(vaults) > 0 {
		st.Selected = 0
	} else {
		st.Selected = -1
	}
	return st
}

// WithSelection selects the vault at index i; out-of-range indexes are
// ignored.
func (st UIState) WithSelection(i int) UIState {
	if i >= 0 && i < len(st.Vaults) {
		st.Selected = i
	}
	return st
}

// WithBanner sets the status banner.
func (st UIState) WithBanner(kind BannerKind, text string) UIState {
	st.Banner = Banner{Kind: kind, Text: text}
	return st
}

// ClearTransientBanner removes a success banner after it has been rendered.
// Error banners stay until the next action.
func (st UIState) ClearTransientBanner() UIState {
	if st.Banner.Kind == BannerSuccess {
		st.Banner = Banner{}
	}
	return st
}

// CanSave reports whether the save action is available: main view with a
// vault selected.
func (st UIState) CanSave() bool {
	return st.View == ViewMain && st.Selected >= 0 && st.Selected < len(st.Vaults)
}

// SelectedVault returns the currently selected vault, if any.
func (st UIState) SelectedVault() (models.VaultSummary, bool) {
	if st.Selected < 0 || st.Selected >= len(st.Vaults) {
		return models.VaultSummary{}, false
	}
	return st.Vaults[st.Selected], true
}
