package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/privachat/internal/flagx"
)

var clientFlags = []string{"-a", "-i", "-l", "-e", "-n"}

// parseFlags overlays cfg with command-line flags. Arguments not listed in
// clientFlags (such as -c) are filtered out first. Malformed values panic.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("privachat", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "server address (host:port)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval/time.Second), "online check interval in seconds")
	fs.StringVar(&cfg.LocalDBPath, "l", cfg.LocalDBPath, "local database file")
	fs.StringVar(&cfg.ExportBaseDir, "e", cfg.ExportBaseDir, "directory for history exports")
	fs.IntVar(&cfg.HistoryPageSize, "n", cfg.HistoryPageSize, "messages loaded when a conversation is opened")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], clientFlags)); err != nil {
		panic(err)
	}
	if *interval <= 0 {
		panic(fmt.Sprintf("online check interval must be positive, got %d", *interval))
	}
	if cfg.HistoryPageSize <= 0 {
		panic(fmt.Sprintf("history page size must be positive, got %d", cfg.HistoryPageSize))
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
