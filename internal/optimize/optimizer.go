// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package optimize

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/pdf-converter/pkg/types"
)

// MaxDimension is the longest side an output image may have; larger pages
// are downscaled proportionally.
const MaxDimension = 2048

// NormalizeForJPEG composites images that carry transparency onto an
// opaque white background. JPEG has no alpha channel; without this step
// transparent regions encode as black. Opaque images pass through
// unchanged.
func NormalizeForJPEG(img image.Image) image.Image {
	if isOpaque(img) {
		return img
	}
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Point{}, 1.0)
}

// isOpaque reports whether the image is known to have no transparent
// pixels. Images that cannot answer are treated as transparent and
// composited, which is harmless for opaque content.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// CapDimensions downscales img so its longer side is at most maxSide,
// preserving aspect ratio with Lanczos resampling. Images already within
// the cap are returned untouched.
func CapDimensions(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxSide, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxSide, imaging.Lanczos)
}

// Encode writes img to w in the resolved format. JPEG honors the
// compression quality; PNG is lossless at the best compression level.
func Encode(w io.Writer, img image.Image, s Settings) error {
	switch s.Format {
	case types.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: s.Quality})
	case types.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	}
	return fmt.Errorf("unknown image format %q", s.Format)
}

// PageFilename builds the deterministic output name for one page:
// {stem}_page_{NNN}.{jpg|png} with a three-digit zero-padded page number.
func PageFilename(stem string, page int, format types.ImageFormat) string {
	return fmt.Sprintf("%s_page_%03d%s", stem, page, format.Ext())
}
