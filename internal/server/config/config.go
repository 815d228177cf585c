// Package config handles configuration for the server component,
// including defaults, .env and JSON overlays, and command-line flags.
package config

import "time"

// Config holds runtime settings for the TaskChat server.
//
// Fields:
//   - EndpointAddr: bind address for the TCP endpoint.
//   - DatabaseDSN: storage DSN. A postgres:// URL selects the Postgres
//     backend; anything else is treated as a SQLite file path.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the test default in prod.
//   - TokenValidity: session token lifetime; zero means tokens never expire.
type Config struct {
	EndpointAddr  string
	DatabaseDSN   string
	SecretKey     string
	TokenValidity time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5555"
	c.DatabaseDSN = "taskchat.db"
	c.SecretKey = "secretKey"
	c.TokenValidity = 0
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (with an optional .env file), an optional JSON file
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
