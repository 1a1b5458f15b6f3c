package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tanklash/flagwire/internal/flagd"
)

// flagd config.toml key mapping to runtime settings.
type fileConfig struct {
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	FlagFile    string   `toml:"flag_file"`
}

// loadServiceConfig overlays config.toml onto defaults. A relative
// flag_file resolves against the config file's directory.
func loadServiceConfig(path string) (flagd.ServiceConfig, error) {
	cfg := flagd.DefaultServiceConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return flagd.ServiceConfig{}, fmt.Errorf("load flagd config: %w", err)
	}

	if meta.IsDefined("addr") {
		addr := strings.TrimSpace(raw.Addr)
		if addr == "" {
			return flagd.ServiceConfig{}, fmt.Errorf("flagd config: addr is empty")
		}
		cfg.Addr = addr
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("flag_file") {
		flagFile := strings.TrimSpace(raw.FlagFile)
		if flagFile != "" && !filepath.IsAbs(flagFile) {
			flagFile = filepath.Join(filepath.Dir(path), flagFile)
		}
		cfg.FlagFile = flagFile
	}
	return cfg, nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}
