package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkravchenko/linkvault/internal/flagx"
	"github.com/mkravchenko/linkvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the request timeout either as a string
// like "15s" or as integer nanoseconds.
type JsonConfig struct {
	IdentityEndpoint string         `json:"identity_endpoint"`
	StoreEndpoint    string         `json:"store_endpoint"`
	APIKey           string         `json:"api_key"`
	ProjectID        string         `json:"project_id"`
	SessionDBPath    string         `json:"session_db_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given no JSON is
// loaded. Empty JSON fields leave the current value in place. Read or
// unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IdentityEndpoint != "" {
		cfg.IdentityEndpoint = jc.IdentityEndpoint
	}
	if jc.StoreEndpoint != "" {
		cfg.StoreEndpoint = jc.StoreEndpoint
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.ProjectID != "" {
		cfg.ProjectID = jc.ProjectID
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
