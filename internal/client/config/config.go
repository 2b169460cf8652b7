package config

import "time"

// Config holds runtime settings for the jobseekr CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend account API.
//   - RequestTimeout: explicit bound on every API exchange; the backend
//     defines no normative timeout, so the client enforces its own.
//   - HealthcheckInterval: how often the client probes server reachability.
//   - PreferencesDSN: sqlite DSN of the local preferences database.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	HealthcheckInterval time.Duration
	PreferencesDSN      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.HealthcheckInterval = 15 * time.Second
	c.PreferencesDSN = "prefs.db"
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
