package domain

import (
	"context"
	"image"
)

// PDFEngine defines the document transformation operations. Every method is
// a single atomic open -> transform -> write -> close call; the engine keeps
// no state between calls.
type PDFEngine interface {
	Merge(paths []string, outputPath string) error
	Split(path, outputDir string) (int, error)
	ExtractPages(path string, indices []int, outputPath string) error
	RemovePages(path string, indices []int, outputPath string) error
	RotatePages(path, outputPath string, angle int, indices []int) error

	AddWatermark(path, text, outputPath string, opacity float64) error
	AddTextAnnotation(path string, pageIndex int, text string, x, y float64, outputPath string) error

	Encrypt(path, outputPath, userPassword, ownerPassword string) error
	Decrypt(path, outputPath, password string) bool

	ExtractText(path string) (string, error)
	ExtractPageText(path string, pageIndex int) (string, error)
	Info(path string) (*DocumentInfo, error)

	Compress(path, outputPath string) error

	RenderPage(path string, pageIndex int, zoom float64) (image.Image, error)
	ExportImages(path, outputDir, format string) (int, error)
}

// Converter bridges to an external office suite for document format
// conversion. The tool runs headless in a subprocess under ctx's deadline.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// RecentStore persists the most-recently-used file list.
type RecentStore interface {
	Add(path string) error
	List() ([]string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetRecentFilesPath() string
	GetRecentFilesMax() int
	GetMaxZoom() float64
	GetConvertTool() string
	GetConvertTimeout() int
}
