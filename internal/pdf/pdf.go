// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf provides document access and page rasterization on top of
// MuPDF via go-fitz.
package pdf

import (
	"image"

	"github.com/pdiddy/pdf-converter/pkg/types"
)

// PageRange bounds rasterization to an inclusive 1-based page window.
// A nil *PageRange means all pages.
type PageRange struct {
	First int
	Last  int
}

// Repository loads documents and answers questions about them without
// converting anything.
type Repository interface {
	// Load opens the PDF at path and returns a validated Document with
	// page count and metadata.
	Load(path string) (types.Document, error)

	// PageCount returns the number of pages in the PDF at path.
	PageCount(path string) (int, error)

	// IsEncrypted reports whether the PDF at path carries an encryption
	// dictionary.
	IsEncrypted(path string) (bool, error)
}

// Rasterizer renders PDF pages into pixel images.
type Rasterizer interface {
	// Rasterize renders the selected pages at the given DPI, in page
	// order. Pages is nil for the whole document.
	Rasterize(path string, dpi int, pages *PageRange) ([]image.Image, error)
}

// TextSource extracts per-page plain text from a PDF.
type TextSource interface {
	ExtractText(path string) ([]string, error)
}

// HTMLSource renders per-page HTML fragments from a PDF.
type HTMLSource interface {
	ExtractHTML(path string) ([]string, error)
}
