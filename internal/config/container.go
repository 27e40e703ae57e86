package config

import (
	"pdf-toolkit/internal/convert"
	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/engine"
	"pdf-toolkit/internal/recent"
	"pdf-toolkit/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config      domain.Config
	Logger      domain.Logger
	Engine      domain.PDFEngine
	Converter   domain.Converter
	RecentStore domain.RecentStore
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	pdfEngine := engine.New(appLogger)
	converter := convert.NewBridge(config.GetConvertTool(), appLogger)
	recentStore := recent.NewStore(config.GetRecentFilesPath(), config.GetRecentFilesMax(), appLogger)

	return &Container{
		Config:      config,
		Logger:      appLogger,
		Engine:      pdfEngine,
		Converter:   converter,
		RecentStore: recentStore,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetEngine returns the PDF engine instance
func (c *Container) GetEngine() domain.PDFEngine {
	return c.Engine
}

// GetConverter returns the conversion bridge instance
func (c *Container) GetConverter() domain.Converter {
	return c.Converter
}

// GetRecentStore returns the recent-files store instance
func (c *Container) GetRecentStore() domain.RecentStore {
	return c.RecentStore
}
