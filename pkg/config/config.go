// Package config loads academia settings from .academia.yaml, the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/academia/pkg/store"
)

const (
	DefaultPath    = "~/.academia.db"
	DefaultModel   = "gemini-2.5-flash"
	DefaultLogFile = "academia.log"
)

// Config holds resolved settings.
type Config struct {
	Path     string `json:"path"`
	APIKey   string `json:"-"`
	Model    string `json:"model"`
	LogLevel string `json:"logLevel"`
	LogFile  string `json:"logFile"`
}

var _ store.Config = (*Config)(nil)

// BasePath returns the medium location.
func (c *Config) BasePath() string {
	return c.Path
}

// LogPath returns the log file location, relative paths resolving inside
// the medium directory. It is empty for the in-memory medium.
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	if c.Path == store.MemoryPath {
		return ""
	}
	return filepath.Join(c.Path, c.LogFile)
}

// Load reads configuration. .env and .env.local in the working directory are
// loaded first without overriding variables that are already set.
func Load() (*Config, error) {
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", DefaultLogFile)
	v.SetConfigName(".academia") // .yaml is implicit
	v.SetEnvPrefix("ACADEMIA")
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "ACADEMIA_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, err
	}

	if override := os.Getenv("ACADEMIA_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	path := strings.TrimSpace(v.GetString("path"))
	if path != store.MemoryPath {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config: expand path %q: %w", path, err)
		}
		path = expanded
	}

	return &Config{
		Path:     path,
		APIKey:   strings.TrimSpace(v.GetString("api_key")),
		Model:    v.GetString("model"),
		LogLevel: v.GetString("log_level"),
		LogFile:  v.GetString("log_file"),
	}, nil
}
