// Package config loads the spawnsim configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the spawn simulator.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Seed for the random source; 0 means a fresh random seed per run.
	Seed uint64 `yaml:"seed"`

	// DataDir is scanned recursively for *.json definition files.
	DataDir string `yaml:"data_dir"`

	// Map is the tile the spawns are applied to.
	Map MapConfig `yaml:"map"`

	// Database, when present, is an additional definition source.
	Database *DatabaseConfig `yaml:"database,omitempty"`
}

// MapConfig describes the target tile.
type MapConfig struct {
	Terrain string `yaml:"terrain"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		DataDir:  "data",
		Map: MapConfig{
			Terrain: "road",
			Width:   24,
			Height:  24,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Map.Width <= 0 || cfg.Map.Height <= 0 {
		return Config{}, fmt.Errorf("config %s: map dimensions must be positive", path)
	}
	return cfg, nil
}
