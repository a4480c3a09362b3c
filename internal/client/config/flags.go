package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered to the flags handled here so other loaders can share it.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "path of the local session cache")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "path of the rendered HTML page")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
