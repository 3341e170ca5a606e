// Package config resolves database connection parameters from an optional
// populate.yaml project file, environment variables, and CLI flags.
// Precedence: flags > environment > populate.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig is the connection block of populate.yaml.
// The password is deliberately absent: it comes only from $DB_PASSWORD
// (typically via a .env file).
type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode,omitempty"`
}

// ProjectConfig is the parsed populate.yaml file.
type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Timeout    string           `yaml:"timeout,omitempty"`
}

const ConfigFileName = "populate.yaml"

// Load reads populate.yaml from dir. Returns ErrConfigNotFound if the file
// does not exist.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// Flags carries the connection values supplied on the command line.
// Zero values mean "not set".
type Flags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// ResolveConnection merges flags, environment variables, and the optional
// project config into a single ConnectionConfig.
//
// Environment variables follow the original deployment convention:
// DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE.
func ResolveConnection(flags Flags, projectCfg *ProjectConfig) (populate.ConnectionConfig, error) {
	var yamlConn ConnectionConfig
	if projectCfg != nil {
		yamlConn = projectCfg.Connection
	}

	port := flags.Port
	if port == 0 {
		if raw := os.Getenv("DB_PORT"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return populate.ConnectionConfig{}, fmt.Errorf("invalid DB_PORT %q: %w: %w", raw, err, populate.ErrInvalidConfig)
			}
			port = parsed
		}
	}
	if port == 0 {
		port = yamlConn.Port
	}
	if port == 0 {
		port = populate.DefaultPort
	}

	conn := populate.ConnectionConfig{
		Host:     firstNonEmpty(flags.Host, os.Getenv("DB_HOST"), yamlConn.Host),
		Port:     port,
		Database: firstNonEmpty(flags.Database, os.Getenv("DB_NAME"), yamlConn.Database),
		Username: firstNonEmpty(flags.Username, os.Getenv("DB_USER"), yamlConn.Username),
		Password: os.Getenv("DB_PASSWORD"),
		SSLMode:  firstNonEmpty(flags.SSLMode, os.Getenv("DB_SSLMODE"), yamlConn.SSLMode),
	}
	return conn, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
