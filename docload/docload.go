// Package docload resolves offer documents to linearized plain text. Page
// order is preserved and pages are newline-joined. Loading is best-effort:
// any failure (unreadable file, encrypted or scanned PDF) yields an empty
// string, never an error — the caller reports the document as unextractable
// and moves on.
package docload

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromFile extracts plain text from a document on disk. PDF files go through
// the PDF text extractor; anything else is read as-is.
func FromFile(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return FromPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("docload: reading file failed", "path", path, "error", err)
		return ""
	}
	return string(data)
}

// FromPDF extracts the plain text of every page of a PDF, in page order,
// joined with newlines. Pages that fail to extract are skipped.
func FromPDF(path string) string {
	f, reader, err := pdf.Open(path)
	if err != nil {
		slog.Warn("docload: opening PDF failed", "path", path, "error", err)
		return ""
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("docload: page extraction failed", "path", path, "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n")
}
