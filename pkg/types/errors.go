// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors for the conversion pipeline. Callers branch on these with
// errors.Is; the concrete messages carry document and format context added
// at the point of failure.
var (
	// ErrSourceNotFound indicates the source PDF is missing or was moved
	// after the document was loaded.
	ErrSourceNotFound = errors.New("source PDF not found")

	// ErrInvalidFormat indicates the source file is not a readable PDF.
	ErrInvalidFormat = errors.New("not a valid PDF")

	// ErrInvalidOptions indicates conversion options violate an invariant:
	// unknown kind, missing output directory, bad permission key, unknown
	// quality preset, or out-of-bounds custom image settings.
	ErrInvalidOptions = errors.New("invalid conversion options")

	// ErrUnsupportedConversionType indicates the requested kind has no
	// registered converter.
	ErrUnsupportedConversionType = errors.New("unsupported conversion type")

	// ErrImageConversionFailed indicates a rasterization or encoding
	// failure during image conversion.
	ErrImageConversionFailed = errors.New("image conversion failed")

	// ErrConversionFailed wraps any other converter-internal failure.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrPermissionDenied indicates an I/O access failure on the source or
	// output path.
	ErrPermissionDenied = errors.New("permission denied")
)
