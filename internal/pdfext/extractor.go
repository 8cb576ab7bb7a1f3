// Package pdfext extracts per-page plain text from PDF statement documents.
// It is the collaborator feeding the statement parser; the parser itself
// never touches PDF bytes.
package pdfext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor yields the text of each page of a document as ordered plain-text
// strings. The interface exists so parsing can be tested without real PDF
// files.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// PDFExtractor is the production Extractor built on the ledongthuc/pdf
// library.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor instance.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages reads a PDF file and returns one text string per page, rows
// joined by newlines in reading order.
func (e *PDFExtractor) ExtractPages(path string) (pages []string, err error) {
	// The pdf library panics on some malformed documents; a corrupt
	// statement must surface as an error, not kill the whole batch.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader crashed on %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%s has no pages", path)
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, rowErr := pageText(page)
		if rowErr != nil {
			return nil, fmt.Errorf("extracting page %d of %s: %w", i, path, rowErr)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// pageText reconstructs a page's text row by row, preserving reading order.
// Some documents lack the positioning data row extraction needs; those fall
// back to the library's plain text stream.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return page.GetPlainText(nil)
	}
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
