package models

// Page is the page being captured. It is read once at startup from the host
// environment and injected into the app; the core never queries it again.
type Page struct {
	Title string
	URL   string
}
