// Package convert bridges to an external office suite for document format
// conversion. It is deliberately kept outside the PDF engine: conversion is
// a sandboxed subprocess invocation with a timeout and exit-code checking,
// not part of the engine's own control flow.
package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pdf-toolkit/internal/domain"
)

// Bridge invokes a LibreOffice-compatible converter in headless mode.
type Bridge struct {
	tool   string
	logger domain.Logger
}

// NewBridge creates a conversion bridge around the given tool binary
// (typically "soffice").
func NewBridge(tool string, logger domain.Logger) *Bridge {
	return &Bridge{tool: tool, logger: logger}
}

// Convert converts inputPath into the format implied by outputPath's
// extension. The external tool always names its product after the input's
// base filename inside the output directory; when that differs from the
// requested outputPath the product is renamed, overwriting any existing
// file.
//
// Fails with domain.ErrExternalToolMissing when the tool binary cannot be
// located and domain.ErrConversionFailed on a non-zero exit, an exceeded
// deadline or a missing output file.
func (b *Bridge) Convert(ctx context.Context, inputPath, outputPath string) error {
	if err := requireInput(inputPath); err != nil {
		return err
	}

	targetExt := strings.TrimPrefix(filepath.Ext(outputPath), ".")
	if targetExt == "" {
		return &domain.ValidationError{Field: "output_path", Message: "output path needs a file extension"}
	}

	bin, err := exec.LookPath(b.tool)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExternalToolMissing, b.tool)
	}

	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, "--headless", "--convert-to", targetExt, "--outdir", outDir, inputPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		b.logger.Warn("conversion tool failed", "tool", b.tool, "error", err, "output", strings.TrimSpace(string(output)))
		return fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}

	// The tool writes {inputBase}.{ext} into outDir regardless of the
	// requested name.
	inputBase := filepath.Base(inputPath)
	produced := filepath.Join(outDir, strings.TrimSuffix(inputBase, filepath.Ext(inputBase))+"."+targetExt)
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("%w: no output produced", domain.ErrConversionFailed)
	}

	if produced != outputPath {
		if err := os.Rename(produced, outputPath); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
		}
	}

	b.logger.Info("converted document", "input", inputPath, "output", outputPath)
	return nil
}

func requireInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return domain.ErrNotFound
	}
	return nil
}
