// Package models defines the client-side data model: the authenticated
// session, vaults with their embedded links, and the captured page.
package models

// Session is the authenticated identity returned by the identity endpoint.
// It is either fully populated or absent; a partial session is never
// persisted (the session repository enforces this on Save).
type Session struct {
	Token  string
	UserID string
	Email  string
}

// Complete reports whether all session fields are set.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.UserID != "" && s.Email != ""
}
