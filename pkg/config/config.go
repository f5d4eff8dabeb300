package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all service configs must implement.
type Config interface {
	Validate() error
}

// BaseConfig contains common configuration for all services.
type BaseConfig struct {
	Service  ServiceConfig  `koanf:"service"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
}

// ServiceConfig contains service-specific metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // dev, staging, production
	Port        int    `koanf:"port"`
	GRPCPort    int    `koanf:"grpc_port"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // postgres, sqlite
	Path            string        `koanf:"path"`   // sqlite only
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxConnections  int           `koanf:"max_connections"`
	MinConnections  int           `koanf:"min_connections"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	LogLevel        string        `koanf:"log_level"` // silent, error, warn, info
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// parsers maps config file extensions to koanf parsers.
var parsers = map[string]func() koanf.Parser{
	".yaml": func() koanf.Parser { return yaml.Parser() },
	".yml":  func() koanf.Parser { return yaml.Parser() },
	".json": func() koanf.Parser { return json.Parser() },
}

// Manager layers defaults, config files and environment variables.
type Manager struct {
	k           *koanf.Koanf
	envPrefix   string
	configPaths []string
}

// NewManager creates a manager reading CATALOG_ style variables for serviceName.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		envPrefix:   strings.ToUpper(serviceName) + "_",
		configPaths: configPaths(serviceName, environment()),
	}
}

// WithConfigPaths replaces the config file search paths.
func (m *Manager) WithConfigPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig fills cfg from its own values, every existing config file in
// search order and the environment, then validates it. Later sources win.
func (m *Manager) LoadConfig(cfg Config) error {
	if err := m.k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	for _, path := range m.configPaths {
		err := m.loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := m.k.Load(env.Provider(m.envPrefix, ".", func(s string) string {
		return EnvKey(m.envPrefix, s)
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (m *Manager) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	parser, ok := parsers[ext]
	if !ok {
		return fmt.Errorf("unsupported config file format: %s", ext)
	}
	return m.k.Load(file.Provider(path), parser())
}

// EnvKey converts an environment variable name to a config key.
// CATALOG_DATABASE__MAX_CONNECTIONS maps to database.max_connections:
// a double underscore separates nesting levels, a single one stays part of the key.
func EnvKey(prefix, name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, prefix), "__", "."))
}

// configPaths lists the files LoadConfig looks at, CONFIG_PATH first.
func configPaths(serviceName, env string) []string {
	var paths []string
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append(paths, configPath)
	}
	for _, dir := range []string{".", "configs"} {
		for _, name := range []string{serviceName, serviceName + "." + env} {
			paths = append(paths,
				filepath.Join(dir, name+".yaml"),
				filepath.Join(dir, name+".json"),
			)
		}
	}
	return paths
}

func environment() string {
	for _, key := range []string{"ENVIRONMENT", "ENV"} {
		if env := os.Getenv(key); env != "" {
			return env
		}
	}
	return "dev"
}

// Validate validates the base configuration.
func (c *BaseConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port: %d", c.Service.Port)
	}
	if c.Service.GRPCPort <= 0 || c.Service.GRPCPort > 65535 {
		return fmt.Errorf("invalid grpc port: %d", c.Service.GRPCPort)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return errors.New("database host is required")
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	return nil
}

// GetDefaults returns default configuration values.
func GetDefaults() *BaseConfig {
	return &BaseConfig{
		Service: ServiceConfig{
			Environment: "dev",
			Port:        DefaultHTTPPort,
			GRPCPort:    DefaultGRPCPort,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            DefaultPostgresPort,
			User:            "catalog",
			Password:        "catalog_dev",
			Database:        "catalog_dev",
			SSLMode:         "disable",
			MaxConnections:  DefaultMaxConnections,
			MinConnections:  DefaultMinConnections,
			MaxConnLifetime: DefaultMaxConnLifetime,
			MaxConnIdleTime: DefaultMaxConnIdleTime,
			LogLevel:        "warn",
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "json",
			Development: false,
			OutputPath:  "stdout",
		},
	}
}
