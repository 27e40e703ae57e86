package engine

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"pdf-toolkit/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// Document wraps one opened PDF file for the duration of a single operation.
// It owns the underlying MuPDF document exclusively; Close must be called
// exactly once per successful OpenDocument, which every caller does via
// defer so the native buffers are released on all exit paths.
type Document struct {
	doc  *fitz.Document
	path string
}

// OpenDocument opens the PDF at path.
//
// A missing file maps to domain.ErrNotFound, a password-protected file to
// domain.ErrPasswordRequired and anything unparseable to
// domain.ErrCorruptDocument.
func OpenDocument(path string) (*Document, error) {
	if err := requireSource(path); err != nil {
		return nil, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return nil, domain.ErrPasswordRequired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	return &Document{doc: doc, path: path}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// Image rasterizes the given zero-based page at the given resolution. At 72
// DPI one output pixel corresponds to one PDF point.
func (d *Document) Image(pageIndex int, dpi float64) (image.Image, error) {
	if pageIndex < 0 || pageIndex >= d.PageCount() {
		return nil, domain.ErrPageOutOfRange
	}
	return d.doc.ImageDPI(pageIndex, dpi)
}

// Text returns the text content of the given zero-based page.
func (d *Document) Text(pageIndex int) (string, error) {
	if pageIndex < 0 || pageIndex >= d.PageCount() {
		return "", domain.ErrPageOutOfRange
	}
	return d.doc.Text(pageIndex)
}

// Metadata returns the metadata map of the document. MuPDF fills each value
// into a fixed-size buffer, so the raw strings carry trailing NUL padding;
// every value is truncated at its first NUL byte before being returned.
func (d *Document) Metadata() map[string]string {
	meta := d.doc.Metadata()
	for k, v := range meta {
		if i := strings.IndexByte(v, 0); i >= 0 {
			meta[k] = v[:i]
		}
	}
	return meta
}

// Close releases the underlying native document.
func (d *Document) Close() error {
	return d.doc.Close()
}
