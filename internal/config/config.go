package config

import (
	"os"
	"path/filepath"
	"strconv"

	"pdf-toolkit/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	RecentFilesPath string
	RecentFilesMax  int
	MaxZoom         float64
	ConvertTool     string
	ConvertTimeout  int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS-style PORT wins over SERVER_PORT for parity with other
		// local services.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		RecentFilesPath: getEnvOrDefault("RECENT_FILES_PATH", defaultRecentFilesPath()),
		RecentFilesMax:  getEnvIntOrDefault("RECENT_FILES_MAX", 10),
		MaxZoom:         getEnvFloatOrDefault("RENDER_MAX_ZOOM", 8.0),
		ConvertTool:     getEnvOrDefault("CONVERT_TOOL", "soffice"),
		ConvertTimeout:  getEnvIntOrDefault("CONVERT_TIMEOUT_SEC", 120),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetRecentFilesPath returns the path of the recent-files store
func (c *AppConfig) GetRecentFilesPath() string {
	return c.RecentFilesPath
}

// GetRecentFilesMax returns the maximum number of recent files kept
func (c *AppConfig) GetRecentFilesMax() int {
	return c.RecentFilesMax
}

// GetMaxZoom returns the upper clamp for render zoom factors
func (c *AppConfig) GetMaxZoom() float64 {
	return c.MaxZoom
}

// GetConvertTool returns the office conversion tool binary name
func (c *AppConfig) GetConvertTool() string {
	return c.ConvertTool
}

// GetConvertTimeout returns the conversion timeout in seconds
func (c *AppConfig) GetConvertTimeout() int {
	return c.ConvertTimeout
}

func defaultRecentFilesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pdf-toolkit", "recent.json")
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
