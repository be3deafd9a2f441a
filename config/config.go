package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPages is the default maximum number of pages per part
	DefaultPages = 100

	// DefaultPrefix is the default output filename prefix
	DefaultPrefix = "output"

	// DefaultOutputDir is the default destination directory
	DefaultOutputDir = "."

	// DefaultMaxFileSize is the default maximum upload size (10MB)
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultPort is the default server port
	DefaultPort = "8080"

	// DefaultTempDir is the default temporary directory
	DefaultTempDir = "./temp"
)

// Config holds application configuration
type Config struct {
	Split  SplitConfig  `yaml:"split"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// SplitConfig holds the settings of a split run
type SplitConfig struct {
	OutputDir string `yaml:"output_dir"`
	Pages     int    `yaml:"pages"`
	Prefix    string `yaml:"prefix"`
	Verify    bool   `yaml:"verify"`
	Strict    bool   `yaml:"strict"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port        string `yaml:"port"`
	MaxFileSize int64  `yaml:"max_file_size"`
	TempDir     string `yaml:"temp_dir"`
}

// LogConfig holds logging configuration. An empty level leaves the choice to the command.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Split: SplitConfig{
			OutputDir: DefaultOutputDir,
			Pages:     DefaultPages,
			Prefix:    DefaultPrefix,
		},
		Server: ServerConfig{
			Port:        DefaultPort,
			MaxFileSize: DefaultMaxFileSize,
			TempDir:     DefaultTempDir,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	cfg.Split.OutputDir = getEnv("PDFSPLIT_OUTPUT_DIR", cfg.Split.OutputDir)
	cfg.Split.Pages = getEnvInt("PDFSPLIT_PAGES", cfg.Split.Pages)
	cfg.Split.Prefix = getEnv("PDFSPLIT_PREFIX", cfg.Split.Prefix)
	cfg.Split.Verify = getEnvBool("PDFSPLIT_VERIFY", cfg.Split.Verify)
	cfg.Split.Strict = getEnvBool("PDFSPLIT_STRICT", cfg.Split.Strict)

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.MaxFileSize = getEnvInt64("MAX_FILE_SIZE", cfg.Server.MaxFileSize)
	cfg.Server.TempDir = getEnv("TEMP_DIR", cfg.Server.TempDir)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)

	return cfg, nil
}

// Validate checks settings that no later stage reports on its own.
// The page limit is left to the splitter.
func (c Config) Validate() error {
	if c.Split.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	if strings.ContainsAny(c.Split.Prefix, `/\`) {
		return fmt.Errorf("prefix %q must not contain path separators", c.Split.Prefix)
	}
	if c.Split.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// ValidateServer checks the settings used by the HTTP API.
func (c Config) ValidateServer() error {
	if c.Server.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.Server.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.Server.MaxFileSize)
	}
	if c.Server.TempDir == "" {
		return errors.New("temp directory must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
