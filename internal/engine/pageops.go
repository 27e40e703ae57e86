package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the pages of the given source files, in list order, into
// a single output file. Zero sources is an error; a single source degrades to
// a plain copy.
func (e *Engine) Merge(paths []string, outputPath string) error {
	if len(paths) == 0 {
		return domain.ErrInsufficientInputs
	}
	for _, p := range paths {
		if err := requireSource(p); err != nil {
			return fmt.Errorf("%w: %s", err, p)
		}
	}

	if len(paths) == 1 {
		return copyFile(paths[0], outputPath)
	}

	if err := api.MergeCreateFile(paths, outputPath, false, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("merge %d files: %w", len(paths), err)
	}

	e.logger.Info("merged documents", "count", len(paths), "output", outputPath)
	return nil
}

// Split writes each page of the source document to its own single-page file
// in outputDir, named {base}_page_{n}.pdf with n starting at 1. The
// directory is created if absent. Returns the number of pages written.
func (e *Engine) Split(path, outputDir string) (int, error) {
	if err := requireSource(path); err != nil {
		return 0, err
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	base := baseName(path)
	for i := 1; i <= count; i++ {
		out := filepath.Join(outputDir, fmt.Sprintf("%s_page_%d.pdf", base, i))
		if err := api.TrimFile(path, out, []string{strconv.Itoa(i)}, e.conf()); err != nil {
			discard(out)
			return i - 1, fmt.Errorf("split page %d: %w", i, err)
		}
	}

	e.logger.Info("split document", "path", path, "pages", count)
	return count, nil
}

// ExtractPages builds a new document containing exactly the selected
// zero-based pages, in the given order. Indices beyond the page count are
// silently dropped; duplicates are preserved. A selection that leaves no
// valid page is rejected with domain.ErrInvalidSelection.
func (e *Engine) ExtractPages(path string, indices []int, outputPath string) error {
	pages, err := e.selectPages(path, indices)
	if err != nil {
		return err
	}

	if err := api.CollectFile(path, outputPath, pages, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("extract pages: %w", err)
	}

	e.logger.Info("extracted pages", "path", path, "pages", len(pages), "output", outputPath)
	return nil
}

// RemovePages writes a copy of the document without the selected zero-based
// pages. Out-of-range indices are dropped like in ExtractPages; removing
// every page is rejected since a PDF needs at least one.
func (e *Engine) RemovePages(path string, indices []int, outputPath string) error {
	pages, err := e.selectPages(path, indices)
	if err != nil {
		return err
	}

	count, _ := api.PageCountFile(path)
	if len(pages) >= count {
		return domain.ErrInvalidSelection
	}

	if err := api.RemovePagesFile(path, outputPath, pages, e.conf()); err != nil {
		discard(outputPath)
		return fmt.Errorf("remove pages: %w", err)
	}

	e.logger.Info("removed pages", "path", path, "pages", len(pages), "output", outputPath)
	return nil
}

// selectPages validates the source and converts zero-based indices into
// pdfcpu's 1-based page selection, dropping out-of-range entries.
func (e *Engine) selectPages(path string, indices []int) ([]string, error) {
	if err := requireSource(path); err != nil {
		return nil, err
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	pages := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= count {
			e.logger.Debug("dropping out-of-range page index", "index", i, "page_count", count)
			continue
		}
		pages = append(pages, strconv.Itoa(i+1))
	}
	if len(pages) == 0 {
		return nil, domain.ErrInvalidSelection
	}
	return pages, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
