package engine

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"pdf-toolkit/internal/domain"
)

const (
	// baseDPI is the PDF point resolution; rendering at baseDPI*zoom makes
	// one output pixel per point at zoom 1.
	baseDPI = 72.0

	// MinZoom is the lower clamp for render zoom factors.
	MinZoom = 0.1

	// ExportZoom is the fixed zoom used for image export, where quality
	// matters more than latency.
	ExportZoom = 2.0
)

// RenderPage rasterizes one page into a pixel buffer. The buffer dimensions
// are the page dimensions in points scaled by zoom (pixel = point * zoom).
func (e *Engine) RenderPage(path string, pageIndex int, zoom float64) (image.Image, error) {
	doc, err := OpenDocument(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if zoom < MinZoom {
		zoom = MinZoom
	}

	img, err := doc.Image(pageIndex, baseDPI*zoom)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", pageIndex, err)
	}
	return img, nil
}

// ExportImages renders every page at ExportZoom and writes one image file
// per page to outputDir, named {base}_{page}.{format}. Supported formats are
// "png", "jpg" and "jpeg". The directory is created if absent. Returns the
// number of images written.
func (e *Engine) ExportImages(path, outputDir, format string) (int, error) {
	switch format {
	case "png", "jpg", "jpeg":
	default:
		return 0, &domain.ValidationError{Field: "format", Message: "must be png, jpg or jpeg"}
	}

	doc, err := OpenDocument(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	base := baseName(path)
	count := doc.PageCount()
	for i := 0; i < count; i++ {
		img, err := doc.Image(i, baseDPI*ExportZoom)
		if err != nil {
			return i, fmt.Errorf("render page %d: %w", i, err)
		}

		out := filepath.Join(outputDir, fmt.Sprintf("%s_%d.%s", base, i+1, format))
		if err := writeImage(out, img, format); err != nil {
			discard(out)
			return i, err
		}
	}

	e.logger.Info("exported page images", "path", path, "pages", count, "format", format)
	return count, nil
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, nil)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}
