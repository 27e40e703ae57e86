package engine

import (
	"fmt"
	"strconv"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// AddWatermark draws text centered on every page at a fixed 45 degree
// rotation in large gray type. Opacity outside (0,1] falls back to the
// default. Repeated application stacks visually but never fails
// structurally.
func (e *Engine) AddWatermark(path, text, outputPath string, opacity float64) error {
	if text == "" {
		return &domain.ValidationError{Field: "text", Message: "watermark text is required"}
	}
	if opacity <= 0 || opacity > 1 {
		opacity = domain.DefaultWatermarkOpacity
	}
	if err := requireSource(path); err != nil {
		return err
	}

	// pdfcpu's default text watermark fill is mid gray; only size, rotation
	// and opacity need overriding.
	desc := fmt.Sprintf("points:48, scale:1 abs, rot:45, op:%.2f", opacity)
	wm, err := api.TextWatermark(text, desc, false, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("build watermark: %w", err)
	}

	if err := api.AddWatermarksFile(path, outputPath, nil, wm, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("apply watermark: %w", err)
	}

	e.logger.Info("added watermark", "path", path, "output", outputPath)
	return nil
}

// AddTextAnnotation burns a small red text draw into one page at the given
// position in PDF points, origin at the bottom-left of the page. Callers
// converting from screen pixels divide by the zoom factor that was active at
// click time.
func (e *Engine) AddTextAnnotation(path string, pageIndex int, text string, x, y float64, outputPath string) error {
	if text == "" {
		return &domain.ValidationError{Field: "text", Message: "annotation text is required"}
	}
	if err := requireSource(path); err != nil {
		return err
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}
	if pageIndex < 0 || pageIndex >= count {
		return domain.ErrPageOutOfRange
	}

	wm, err := api.TextWatermark(text, "points:12, scale:1 abs, pos:bl, rot:0, op:1, col:#ff0000", true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("build annotation stamp: %w", err)
	}
	// Absolute position: anchor bottom-left, then offset to the target point.
	wm.Dx = x
	wm.Dy = y

	pages := []string{strconv.Itoa(pageIndex + 1)}
	if err := api.AddWatermarksFile(path, outputPath, pages, wm, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("apply annotation: %w", err)
	}

	e.logger.Info("added text annotation", "path", path, "page", pageIndex, "output", outputPath)
	return nil
}
