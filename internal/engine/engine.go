// Package engine implements the PDF manipulation operations: merge, split,
// page extraction and removal, rotation, watermarking, annotation,
// encryption, text extraction, metadata inspection, compression and page
// rasterization.
//
// Structural transformations are performed with pdfcpu, rendering and text
// extraction with go-fitz (MuPDF). Every operation is stateless: it opens
// the source file, applies one transformation, writes the output and
// releases all resources before returning. Failed operations never leave a
// partially written output file behind.
package engine

import (
	"os"
	"path/filepath"
	"strings"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Engine implements domain.PDFEngine.
type Engine struct {
	logger domain.Logger
}

// New creates a new PDF engine.
func New(logger domain.Logger) *Engine {
	return &Engine{logger: logger}
}

// conf returns a fresh pdfcpu configuration per call. Configurations carry
// passwords and encryption settings, so they are never shared between
// operations.
func (e *Engine) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// requireSource maps a missing source path to domain.ErrNotFound before any
// library call sees it.
func requireSource(path string) error {
	if _, err := os.Stat(path); err != nil {
		return domain.ErrNotFound
	}
	return nil
}

// discard removes a partially written output file after a failed operation.
func discard(path string) {
	if path != "" {
		_ = os.Remove(path)
	}
}

// baseName returns the file name without directory or extension, used to
// derive per-page output names.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
