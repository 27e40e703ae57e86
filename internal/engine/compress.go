package engine

import (
	"fmt"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Compress re-serializes the document with unreferenced objects removed and
// streams deflated. Purely structural: page count, order and visible content
// are unchanged, and embedded images are not recompressed.
func (e *Engine) Compress(path, outputPath string) error {
	if err := requireSource(path); err != nil {
		return err
	}

	if err := api.OptimizeFile(path, outputPath, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	e.logger.Info("compressed document", "path", path, "output", outputPath)
	return nil
}
