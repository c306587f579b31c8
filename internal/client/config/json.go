package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gufrankhursheed/job-platform-frontend/internal/flagx"
	"github.com/gufrankhursheed/job-platform-frontend/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling. Durations accept
// either "15s" strings or integer nanoseconds via timex.Duration.
type jsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	SocketURL         string         `json:"socket_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	ReconnectMaxDelay timex.Duration `json:"reconnect_max_delay"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no JSON layer; fields left out of the file keep their
// current values.
func parseJSON(cfg *Config) error {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SocketURL != "" {
		cfg.SocketURL = jc.SocketURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ReconnectMaxDelay.Duration != 0 {
		cfg.ReconnectMaxDelay = jc.ReconnectMaxDelay.Duration
	}
	return nil
}
