package config

import (
	"flag"
	"os"

	"github.com/ooakt0/fyi-bolt-sub000/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-m int      max upload size in bytes (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.Int64Var(&cfg.MaxFileSizeBytes, "m", cfg.MaxFileSizeBytes, "max upload size in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
