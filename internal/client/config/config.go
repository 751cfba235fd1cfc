// Package config loads runtime settings for the linkvault client from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence.
package config

import "time"

// Config holds runtime settings for the linkvault client.
//
// PageTitle/PageURL describe the page being captured. They come from the
// host environment (flags) once at startup; the rest of the client treats
// them as an injected value.
type Config struct {
	IdentityEndpoint string
	StoreEndpoint    string
	APIKey           string
	ProjectID        string
	SessionDBPath    string
	RequestTimeout   time.Duration
	LogLevel         string
	PageTitle        string
	PageURL          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.IdentityEndpoint = "https://identitytoolkit.googleapis.com"
	c.StoreEndpoint = "https://firestore.googleapis.com"
	c.SessionDBPath = "linkvault.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
