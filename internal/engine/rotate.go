package engine

import (
	"fmt"
	"strconv"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RotatePages sets the absolute rotation of the targeted pages to angle
// (90, 180 or 270 degrees). This deliberately overwrites the page-level
// rotation instead of adding to it: rotating to 90 twice still yields 90.
// A nil or empty index set targets every page; out-of-range indices are
// dropped.
func (e *Engine) RotatePages(path, outputPath string, angle int, indices []int) error {
	if !domain.ValidRotation(angle) {
		return &domain.ValidationError{Field: "angle", Message: "must be 90, 180 or 270"}
	}
	if err := requireSource(path); err != nil {
		return err
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	if len(indices) == 0 {
		indices = make([]int, ctx.PageCount)
		for i := range indices {
			indices[i] = i
		}
	}

	// pdfcpu rotation is additive, so group the target pages by the delta
	// that brings their current rotation to the requested absolute angle.
	byDelta := make(map[int][]string)
	for _, i := range indices {
		if i < 0 || i >= ctx.PageCount {
			e.logger.Debug("dropping out-of-range page index", "index", i, "page_count", ctx.PageCount)
			continue
		}
		_, _, attrs, err := ctx.PageDict(i+1, false)
		if err != nil {
			return fmt.Errorf("page %d attributes: %w", i, err)
		}
		delta := ((angle-attrs.Rotate)%360 + 360) % 360
		byDelta[delta] = append(byDelta[delta], strconv.Itoa(i+1))
	}

	if err := copyFile(path, outputPath); err != nil {
		return fmt.Errorf("copy to output: %w", err)
	}
	for delta, pages := range byDelta {
		if delta == 0 {
			continue
		}
		if err := api.RotateFile(outputPath, "", delta, pages, e.conf()); err != nil {
			discard(outputPath)
			return fmt.Errorf("rotate pages by %d: %w", delta, err)
		}
	}

	e.logger.Info("rotated pages", "path", path, "angle", angle, "output", outputPath)
	return nil
}
