package handler

import (
	"context"
	"image"

	"pdf-toolkit/internal/domain"
)

// MockEngine implements domain.PDFEngine with canned results.
type MockEngine struct {
	err       error
	decryptOK bool
	info      *domain.DocumentInfo
	text      string
	count     int

	// lastIndices records the selection passed to the last page-set call.
	lastIndices []int
}

func (m *MockEngine) Merge(paths []string, outputPath string) error { return m.err }
func (m *MockEngine) Split(path, outputDir string) (int, error)     { return m.count, m.err }

func (m *MockEngine) ExtractPages(path string, indices []int, outputPath string) error {
	m.lastIndices = indices
	return m.err
}

func (m *MockEngine) RemovePages(path string, indices []int, outputPath string) error {
	m.lastIndices = indices
	return m.err
}

func (m *MockEngine) RotatePages(path, outputPath string, angle int, indices []int) error {
	m.lastIndices = indices
	return m.err
}

func (m *MockEngine) AddWatermark(path, text, outputPath string, opacity float64) error {
	return m.err
}

func (m *MockEngine) AddTextAnnotation(path string, pageIndex int, text string, x, y float64, outputPath string) error {
	return m.err
}

func (m *MockEngine) Encrypt(path, outputPath, userPassword, ownerPassword string) error {
	return m.err
}

func (m *MockEngine) Decrypt(path, outputPath, password string) bool { return m.decryptOK }

func (m *MockEngine) ExtractText(path string) (string, error) { return m.text, m.err }

func (m *MockEngine) ExtractPageText(path string, pageIndex int) (string, error) {
	return m.text, m.err
}

func (m *MockEngine) Info(path string) (*domain.DocumentInfo, error) { return m.info, m.err }

func (m *MockEngine) Compress(path, outputPath string) error { return m.err }

func (m *MockEngine) RenderPage(path string, pageIndex int, zoom float64) (image.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func (m *MockEngine) ExportImages(path, outputDir, format string) (int, error) {
	return m.count, m.err
}

// MockConverter implements domain.Converter.
type MockConverter struct {
	err error
}

func (m *MockConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	return m.err
}

// MockRecentStore implements domain.RecentStore.
type MockRecentStore struct {
	files []string
	err   error
}

func (m *MockRecentStore) Add(path string) error {
	if m.err != nil {
		return m.err
	}
	m.files = append([]string{path}, m.files...)
	return nil
}

func (m *MockRecentStore) List() ([]string, error) {
	return m.files, m.err
}
