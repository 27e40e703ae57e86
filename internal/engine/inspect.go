package engine

import (
	"errors"
	"fmt"
	"strings"

	"pdf-toolkit/internal/domain"
)

// ExtractText returns the text content of all pages concatenated in page
// order. No delimiter is inserted between pages; this matches the historical
// output byte for byte and downstream consumers depend on it.
func (e *Engine) ExtractText(path string) (string, error) {
	doc, err := OpenDocument(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.PageCount(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extract text from page %d: %w", i, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// ExtractPageText returns the text content of a single zero-based page.
func (e *Engine) ExtractPageText(path string, pageIndex int) (string, error) {
	doc, err := OpenDocument(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return doc.Text(pageIndex)
}

// Info reads document-level metadata. Absent string fields are reported as
// the "N/A" sentinel; date strings are returned as stored in the document.
// A password-protected document cannot be opened for content, but Info still
// succeeds and reports it as encrypted.
func (e *Engine) Info(path string) (*domain.DocumentInfo, error) {
	doc, err := OpenDocument(path)
	if errors.Is(err, domain.ErrPasswordRequired) {
		return &domain.DocumentInfo{
			Title:     domain.MetadataMissing,
			Author:    domain.MetadataMissing,
			Subject:   domain.MetadataMissing,
			Creator:   domain.MetadataMissing,
			Producer:  domain.MetadataMissing,
			Encrypted: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	meta := doc.Metadata()
	enc := meta["encryption"]

	return &domain.DocumentInfo{
		PageCount:    doc.PageCount(),
		Title:        metaField(meta, "title"),
		Author:       metaField(meta, "author"),
		Subject:      metaField(meta, "subject"),
		Creator:      metaField(meta, "creator"),
		Producer:     metaField(meta, "producer"),
		CreationDate: meta["creationDate"],
		ModDate:      meta["modDate"],
		Encrypted:    enc != "" && enc != "None",
	}, nil
}

func metaField(meta map[string]string, key string) string {
	if v := meta[key]; v != "" {
		return v
	}
	return domain.MetadataMissing
}
