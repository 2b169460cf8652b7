package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkarpov/jobseekr/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-i int      healthcheck interval in seconds (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   sqlite DSN for the preferences database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	healthcheckInterval := fs.Int("i", int(cfg.HealthcheckInterval.Seconds()), "healthcheck interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.PreferencesDSN, "d", cfg.PreferencesDSN, "sqlite DSN for the preferences database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HealthcheckInterval = time.Duration(*healthcheckInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
