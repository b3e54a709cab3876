// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value objects shared across the conversion
// pipeline: documents, conversion options, quality presets, and the
// per-stage configuration structs.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// ConversionKind identifies the requested output format of a conversion.
type ConversionKind string

const (
	KindWord       ConversionKind = "word"
	KindExcel      ConversionKind = "excel"
	KindPowerPoint ConversionKind = "powerpoint"
	KindText       ConversionKind = "text"
	KindHTML       ConversionKind = "html"
	KindMarkdown   ConversionKind = "markdown"
	KindEPUB       ConversionKind = "epub"
	KindRTF        ConversionKind = "rtf"
	KindODT        ConversionKind = "odt"
	KindImage      ConversionKind = "image"
)

// kindExtensions maps each kind to its canonical file extension.
var kindExtensions = map[ConversionKind]string{
	KindWord:       ".docx",
	KindExcel:      ".xlsx",
	KindPowerPoint: ".pptx",
	KindText:       ".txt",
	KindHTML:       ".html",
	KindMarkdown:   ".md",
	KindEPUB:       ".epub",
	KindRTF:        ".rtf",
	KindODT:        ".odt",
	KindImage:      ".png",
}

// Valid reports whether k is one of the declared conversion kinds.
func (k ConversionKind) Valid() bool {
	_, ok := kindExtensions[k]
	return ok
}

// Ext returns the canonical file extension for the kind, including the
// leading dot. Unknown kinds return an empty string.
func (k ConversionKind) Ext() string {
	return kindExtensions[k]
}

func (k ConversionKind) String() string {
	return string(k)
}

// ParseKind converts a user-supplied format name into a ConversionKind.
func ParseKind(s string) (ConversionKind, error) {
	k := ConversionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown format %q (valid: %s)",
			ErrInvalidOptions, s, strings.Join(KindNames(), ", "))
	}
	return k, nil
}

// KindNames returns all declared kind names in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(kindExtensions))
	for k := range kindExtensions {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}
