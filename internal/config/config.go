package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is resolved once at startup and passed down; nothing re-reads the
// environment after Load returns.
type Config struct {
	ListenAddr      string `yaml:"listen_addr"`
	DBPath          string `yaml:"db_path"`
	StoreBackend    string `yaml:"store_backend"`
	PrincipalSecret string `yaml:"principal_secret"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`

	// Production is true when the platform hostname marker is present.
	// Outside production the fixed development identity stands in for real
	// authentication.
	Production bool `yaml:"-"`
}

// Load builds the configuration from an optional YAML file (path in
// LAKESTASH_CONFIG) overridden by environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:   ":8080",
		DBPath:       "lakestash.sqlite3",
		StoreBackend: BackendSQLite,
		LogLevel:     "info",
	}

	if path := os.Getenv("LAKESTASH_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.StoreBackend = getEnv("STORE_BACKEND", cfg.StoreBackend)
	cfg.PrincipalSecret = getEnv("PRINCIPAL_SECRET", cfg.PrincipalSecret)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.Production = os.Getenv("WEBSITE_HOSTNAME") != ""

	if cfg.StoreBackend != BackendSQLite && cfg.StoreBackend != BackendMemory {
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
