// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the conversion dispatch core: one converter
// strategy per output kind, a closed factory keyed by kind, and the use
// case that orchestrates a conversion end to end.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdf-converter/pkg/types"
)

// Converter is the strategy interface implemented once per wired output
// kind. Convert must fail when ValidateConversion would return false.
type Converter interface {
	// Kind returns the output kind this converter produces.
	Kind() types.ConversionKind

	// Convert transforms the document under the given options and returns
	// the path of the converted file, or the directory holding the page
	// images for the image kind.
	Convert(doc types.Document, opts types.ConversionOptions) (string, error)

	// ValidateConversion reports whether this converter can run with the
	// given options: the kind must match and the output location must
	// exist or be creatable.
	ValidateConversion(opts types.ConversionOptions) bool
}

// singleFileOutput resolves the output file for single-file kinds. An
// output path without an extension gets the canonical extension for the
// kind appended.
func singleFileOutput(opts types.ConversionOptions) string {
	if filepath.Ext(opts.OutputPath) != "" {
		return opts.OutputPath
	}
	return opts.OutputPath + opts.FileExtension()
}

// imageOutputDir resolves the directory page images land in. An output
// path carrying an extension is treated as a file path; its parent is the
// directory.
func imageOutputDir(opts types.ConversionOptions) string {
	if filepath.Ext(opts.OutputPath) != "" {
		return filepath.Dir(opts.OutputPath)
	}
	return opts.OutputPath
}

// validateFileTarget is the precondition single-file converters re-check:
// matching kind and an existing (or creatable) parent directory.
func validateFileTarget(kind types.ConversionKind, opts types.ConversionOptions) bool {
	if opts.Kind != kind {
		return false
	}
	return usableDir(filepath.Dir(singleFileOutput(opts)))
}

// validateDirTarget is the image-kind precondition: matching kind and a
// usable output directory.
func validateDirTarget(kind types.ConversionKind, opts types.ConversionOptions) bool {
	if opts.Kind != kind {
		return false
	}
	return usableDir(imageOutputDir(opts))
}

// usableDir reports whether dir exists or can be created. Creation is
// idempotent, so probing by MkdirAll is safe.
func usableDir(dir string) bool {
	if info, err := os.Stat(dir); err == nil {
		return info.IsDir()
	}
	return os.MkdirAll(dir, 0o755) == nil
}

// ensureParentDir creates the parent directory of a target file.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: creating %s", types.ErrPermissionDenied, dir)
		}
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

// invalidOptions builds the error Convert returns when called with options
// that fail validation.
func invalidOptions(kind types.ConversionKind) error {
	return fmt.Errorf("%w: not valid for %s conversion", types.ErrInvalidOptions, kind)
}
