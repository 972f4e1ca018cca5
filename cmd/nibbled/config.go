package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/nibblekit/internal/config"
)

// nibbled config.toml keys.
type fileConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	MaxNibbles  int      `toml:"max_nibbles"`
}

// loadServerConfig overlays the keys present in path onto the defaults.
// A missing file yields the defaults.
func loadServerConfig(path string) (config.ServerConfig, error) {
	cfg := config.DefaultServerConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return config.ServerConfig{}, fmt.Errorf("load nibbled config: %w", err)
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("max_nibbles") {
		cfg.MaxNibbles = raw.MaxNibbles
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config.ServerConfig{}, fmt.Errorf("load nibbled config: unknown key %q", undecoded[0].String())
	}

	if err := config.ValidateServerConfig(cfg); err != nil {
		return config.ServerConfig{}, err
	}
	return cfg, nil
}
