package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tanklash/flagwire/internal/flagd"
	"github.com/tanklash/flagwire/internal/observability"
)

func main() {
	configPath := pflag.String("config", "", "path to flagd config.toml")
	pflag.Parse()

	logger := observability.InitLogger("flagd")

	cfg := flagd.DefaultServiceConfig()
	if *configPath != "" {
		loaded, err := loadServiceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "flagd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	srv, err := flagd.NewServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flagd: %v\n", err)
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "flagd: %v\n", err)
		os.Exit(1)
	}
}
