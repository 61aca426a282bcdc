package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/codetutor/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-t int      session idle timeout in seconds (default from Config)
//	-m int      password attempts allowed per sign-in (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	sessionTimeout := fs.Int("t", int(cfg.SessionTimeout.Seconds()), "session idle timeout (in seconds)")
	fs.IntVar(&cfg.MaxLoginAttempts, "m", cfg.MaxLoginAttempts, "password attempts per sign-in")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTimeout = time.Duration(*sessionTimeout) * time.Second
}
