package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/codetutor/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// specified as integer seconds and converted to time.Duration afterwards.
type JsonConfig struct {
	DataDir               string `json:"data_dir"`
	SessionTimeoutSeconds int    `json:"session_timeout_seconds"`
	MaxLoginAttempts      int    `json:"max_login_attempts"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Absent flags mean no JSON is loaded. Fields left
// zero in the file keep their current values. Panics on read or unmarshal
// errors (caller should recover if desired).
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.SessionTimeoutSeconds > 0 {
		cfg.SessionTimeout = time.Duration(jc.SessionTimeoutSeconds) * time.Second
	}
	if jc.MaxLoginAttempts > 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}
}
