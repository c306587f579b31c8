// Package config loads runtime settings for the job-platform client.
//
// Sources are layered, later ones winning: built-in defaults, a JSON file
// (-c/-config), environment variables, command-line flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - SocketURL: ws:// or wss:// endpoint of the message stream.
//   - RequestTimeout: per-request HTTP timeout.
//   - ReconnectMaxDelay: cap for the socket reconnect backoff.
type Config struct {
	APIBaseURL        string        `env:"API_BASE_URL"`
	SocketURL         string        `env:"SOCKET_URL"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"`
	ReconnectMaxDelay time.Duration `env:"RECONNECT_MAX_DELAY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5014/api"
	c.SocketURL = "ws://localhost:5014/socket"
	c.RequestTimeout = 15 * time.Second
	c.ReconnectMaxDelay = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment and flag values in that order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
