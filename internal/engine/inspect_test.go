package engine

import (
	"path/filepath"
	"testing"

	"pdf-toolkit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_AllPagesInOrder(t *testing.T) {
	e := newTestEngine()
	dir := t.TempDir()
	src := writeFixturePDF(t, dir, "doc.pdf", 3, "")

	text, err := e.ExtractText(src)
	require.NoError(t, err)

	last := -1
	for i := 1; i <= 3; i++ {
		pos := indexAfter(text, fixturePageText(i), last)
		assert.Greater(t, pos, last, "page %d text out of order", i)
		last = pos
	}
}

func indexAfter(s, sub string, after int) int {
	for i := after + 1; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestExtractPageText(t *testing.T) {
	e := newTestEngine()
	dir := t.TempDir()
	src := writeFixturePDF(t, dir, "doc.pdf", 2, "")

	text, err := e.ExtractPageText(src, 1)
	require.NoError(t, err)
	assert.Contains(t, text, fixturePageText(2))
	assert.NotContains(t, text, fixturePageText(1))

	_, err = e.ExtractPageText(src, 2)
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
}

func TestInfo_SentinelForMissingFields(t *testing.T) {
	e := newTestEngine()
	dir := t.TempDir()
	src := writeFixturePDF(t, dir, "doc.pdf", 4, "")

	info, err := e.Info(src)
	require.NoError(t, err)

	assert.Equal(t, 4, info.PageCount)
	assert.Equal(t, domain.MetadataMissing, info.Title)
	assert.Equal(t, domain.MetadataMissing, info.Author)
	assert.Equal(t, domain.MetadataMissing, info.Subject)
	assert.False(t, info.Encrypted)
}

func TestInfo_TitlePresent(t *testing.T) {
	e := newTestEngine()
	dir := t.TempDir()
	src := writeFixturePDF(t, dir, "doc.pdf", 1, "Quarterly Report")

	info, err := e.Info(src)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Report", info.Title)
}

func TestInfo_MissingFile(t *testing.T) {
	e := newTestEngine()
	_, err := e.Info(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
