package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Client   ClientConfig   `yaml:"client"`
	Mail     MailConfig     `yaml:"mail"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DatabaseConfig contains store backend settings
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	Mongo    MongoConfig    `yaml:"mongo"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MongoConfig contains MongoDB connection settings
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SnapshotConfig contains daily stats snapshot settings
type SnapshotConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DailyRunTime string `yaml:"daily_run_time"`
}

// ClientConfig contains terminal client settings
type ClientConfig struct {
	ServerURL string `yaml:"server_url"`
}

// MailConfig contains bulk-mail compose settings
type MailConfig struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8090,
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Type: "mongo",
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "companydb",
				Collection: "companies",
			},
		},
		Snapshot: SnapshotConfig{
			Enabled:      false,
			DailyRunTime: "02:00",
		},
		Client: ClientConfig{
			ServerURL: "http://localhost:8090",
		},
		Mail: MailConfig{
			Subject: "Job Application",
			Body:    "Dear Hiring Team,\n\nPlease find my application attached.\n\nBest regards",
		},
	}
}

// LoadConfig loads configuration from a YAML file, overlaying the defaults.
// A missing file is not an error: defaults are returned as-is.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
