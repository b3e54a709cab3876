// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// metadataKeys are the go-fitz metadata entries carried onto the Document.
var metadataKeys = []string{
	"title", "author", "subject", "keywords",
	"creator", "producer", "creationDate", "modDate",
}

// FitzService implements Repository, Rasterizer, TextSource, and
// HTMLSource using MuPDF. Each call opens and closes the document; the
// service itself holds no per-document state.
type FitzService struct {
	log logger.Logger
}

// NewFitzService creates the MuPDF-backed document service.
func NewFitzService(log logger.Logger) *FitzService {
	return &FitzService{log: log.Named("pdf")}
}

// Load opens the PDF at path and builds a validated Document.
func (s *FitzService) Load(path string) (types.Document, error) {
	doc, err := s.open(path)
	if err != nil {
		return types.Document{}, err
	}
	defer doc.Close()

	meta := make(map[string]string)
	raw := doc.Metadata()
	for _, key := range metadataKeys {
		if v := raw[key]; v != "" {
			meta[key] = v
		}
	}

	pages := doc.NumPage()
	s.log.Debug("loaded document",
		logger.String("path", path),
		logger.Int("pages", pages),
	)
	return types.NewDocument(path, pages, meta)
}

// PageCount returns the number of pages in the PDF at path.
func (s *FitzService) PageCount(path string) (int, error) {
	doc, err := s.open(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// IsEncrypted scans the raw file for an /Encrypt dictionary reference.
// MuPDF decrypts transparently when it can, so the trailer scan is the
// reliable signal that a password may be needed.
func (s *FitzService) IsEncrypted(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", types.ErrSourceNotFound, path)
		}
		if os.IsPermission(err) {
			return false, fmt.Errorf("%w: %s", types.ErrPermissionDenied, path)
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return bytes.Contains(data, []byte("/Encrypt")), nil
}

// Rasterize renders the selected pages at the given DPI, in page order.
func (s *FitzService) Rasterize(path string, dpi int, pages *PageRange) ([]image.Image, error) {
	doc, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	first, last := pageWindow(doc.NumPage(), pages)
	images := make([]image.Image, 0, last-first+1)
	for page := first; page <= last; page++ {
		img, err := doc.ImageDPI(page-1, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("rasterizing page %d of %s: %w", page, path, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// ExtractText returns the plain text of every page, in page order.
func (s *FitzService) ExtractText(path string) ([]string, error) {
	doc, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d of %s: %w", n+1, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// ExtractHTML returns an HTML fragment for every page, in page order.
func (s *FitzService) ExtractHTML(path string) ([]string, error) {
	doc, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		html, err := doc.HTML(n, false)
		if err != nil {
			return nil, fmt.Errorf("rendering HTML for page %d of %s: %w", n+1, path, err)
		}
		pages = append(pages, html)
	}
	return pages, nil
}

// open wraps fitz.New with the error taxonomy.
func (s *FitzService) open(path string) (*fitz.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrSourceNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrInvalidFormat, path, err)
	}
	return doc, nil
}

// pageWindow clamps an optional page range to [1, total].
func pageWindow(total int, pages *PageRange) (first, last int) {
	first, last = 1, total
	if pages == nil {
		return first, last
	}
	if pages.First > first {
		first = pages.First
	}
	if pages.Last >= first && pages.Last < last {
		last = pages.Last
	}
	return first, last
}
