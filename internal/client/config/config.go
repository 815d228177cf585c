// Package config handles configuration for the client component.
package config

import (
	"flag"
	"os"

	"github.com/duongnt/taskchat/internal/flagx"
)

// Config holds runtime settings for the TaskChat client.
type Config struct {
	ServerAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "localhost:5555"
}

// LoadConfig builds a Config from defaults, the TASKCHAT_SERVER environment
// variable, and the -a flag, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("TASKCHAT_SERVER"); v != "" {
		cfg.ServerAddr = v
	}

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "server address")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}
