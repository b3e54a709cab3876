// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a loaded source PDF: its path, page count, and metadata.
// Documents are constructed once per source file and never mutated by
// converters.
type Document struct {
	Path     string
	Pages    int
	Metadata map[string]string
}

// NewDocument validates and builds a Document. The backing file must exist,
// carry a .pdf extension, and have at least one page.
func NewDocument(path string, pages int, metadata map[string]string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		if os.IsPermission(err) {
			return Document{}, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if pages < 1 {
		return Document{}, fmt.Errorf("%w: document must have at least one page", ErrInvalidFormat)
	}

	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		if v != "" {
			meta[k] = v
		}
	}
	return Document{Path: path, Pages: pages, Metadata: meta}, nil
}

// Filename returns the base name of the source file.
func (d Document) Filename() string {
	return filepath.Base(d.Path)
}

// Stem returns the base name without its extension, used to derive output
// file names.
func (d Document) Stem() string {
	name := d.Filename()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Size returns the byte size of the backing file.
func (d Document) Size() (int64, error) {
	info, err := os.Stat(d.Path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", d.Path, err)
	}
	return info.Size(), nil
}

// Title returns the title metadata value, if present.
func (d Document) Title() string {
	return d.Metadata["title"]
}

// Author returns the author metadata value, if present.
func (d Document) Author() string {
	return d.Metadata["author"]
}

func (d Document) String() string {
	return fmt.Sprintf("Document(path=%s, pages=%d)", d.Path, d.Pages)
}
