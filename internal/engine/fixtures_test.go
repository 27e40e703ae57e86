package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pdf-toolkit/internal/domain"
)

// testLogger discards all output.
type testLogger struct{}

func newTestLogger() domain.Logger { return &testLogger{} }

func (l *testLogger) Info(msg string, fields ...interface{})             {}
func (l *testLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *testLogger) Debug(msg string, fields ...interface{})            {}
func (l *testLogger) Warn(msg string, fields ...interface{})             {}

func newTestEngine() *Engine { return New(newTestLogger()) }

// fixturePageText is the text drawn on page n (1-based) of generated
// fixtures.
func fixturePageText(n int) string {
	return fmt.Sprintf("Fixture page %d", n)
}

// writeFixturePDF generates a minimal but fully valid n-page PDF at
// dir/name. Each page is US Letter (612x792 pt) and carries one line of
// Helvetica text identifying the page. A non-empty title is stored in the
// document info dictionary.
func writeFixturePDF(t *testing.T, dir, name string, pages int, title string) string {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int

	writeObj := func(body string) int {
		offsets = append(offsets, buf.Len())
		num := len(offsets)
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
		return num
	}

	buf.WriteString("%PDF-1.4\n")

	// Object numbers are fixed: 1 catalog, 2 page tree, 3 font, then one
	// page/content pair per page.
	kids := ""
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i := 0; i < pages; i++ {
		contentNum := 5 + 2*i
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentNum))
		stream := fmt.Sprintf("BT /F1 24 Tf 72 700 Td (%s) Tj ET", fixturePageText(i+1))
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	infoRef := ""
	if title != "" {
		num := writeObj(fmt.Sprintf("<< /Title (%s) >>", title))
		infoRef = fmt.Sprintf(" /Info %d 0 R", num)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, infoRef, xrefOffset)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
