package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the terminal client.
//
// LocalDBPath holds the cached wrapped key and the peer public-key cache;
// it never contains plaintext messages. Decrypted exports are written
// below ExportBaseDir.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	LocalDBPath         string
	ExportBaseDir       string
	HistoryPageSize     int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.LocalDBPath = "privachat.db"
	c.ExportBaseDir = ""
	c.HistoryPageSize = 50
}

// ExportDir returns the base directory for exports: ExportBaseDir when
// set, otherwise the directory holding the local database.
func (c *Config) ExportDir() string {
	if c.ExportBaseDir != "" {
		return c.ExportBaseDir
	}
	if dir := filepath.Dir(c.LocalDBPath); dir != "." {
		return dir
	}
	return ""
}

// LoadConfig applies defaults, then the JSON file named by -c/-config,
// then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
