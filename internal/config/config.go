package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultServerName = "nibbled"
	DefaultServerAddr = ":9400"
	DefaultMaxNibbles = 1 << 20
)

type ServerConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	MaxNibbles  int      `toml:"max_nibbles"`
}

// CLIConfig configures nibblectl. Relative file arguments resolve under Root.
type CLIConfig struct {
	Root     string `toml:"root"`
	LogLevel string `toml:"log_level"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:       DefaultServerName,
		Addr:       DefaultServerAddr,
		MaxNibbles: DefaultMaxNibbles,
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = DefaultServerName
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultServerAddr
	}
	if cfg.MaxNibbles == 0 {
		cfg.MaxNibbles = DefaultMaxNibbles
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func LoadCLIConfig(path string) (CLIConfig, error) {
	var cfg CLIConfig
	if err := loadToml(path, &cfg); err != nil {
		return CLIConfig{}, err
	}
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = "."
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.MaxNibbles < 0 {
		return fmt.Errorf("server config max_nibbles must be positive: %d", cfg.MaxNibbles)
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}

// Resolve joins a relative path onto Root.
func (c CLIConfig) Resolve(path string) string {
	if filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}
