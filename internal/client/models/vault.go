package models

import "time"

// Vault is a named, user-owned container of links. The link sequence is
// embedded in the vault document, so appending requires reading the whole
// document first.
type Vault struct {
	ID      string
	Name    string
	OwnerID string
	Links   []Link

	// UpdateTime is the document revision reported by the store on read,
	// used as an optimistic-concurrency precondition on writes.
	UpdateTime string
}

// VaultSummary is the subset of vault data shown in the vault picker.
type VaultSummary struct {
	ID   string
	Name string
}

// Link is one captured page reference. Links are created only at capture
// time and are immutable once appended.
type Link struct {
	ID          string
	Title       string
	URL         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
}
