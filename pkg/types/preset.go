// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// ImageFormat is the raster encoding used for image output.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "JPEG"
	FormatPNG  ImageFormat = "PNG"
)

// Ext returns the output file extension for the format, including the
// leading dot.
func (f ImageFormat) Ext() string {
	if f == FormatPNG {
		return ".png"
	}
	return ".jpg"
}

// Valid reports whether f is a supported image format.
func (f ImageFormat) Valid() bool {
	return f == FormatJPEG || f == FormatPNG
}

// ParseImageFormat accepts common spellings (jpeg, jpg, png, any case) and
// returns the canonical ImageFormat.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: unknown image format %q (valid: jpeg, png)", ErrInvalidOptions, s)
}

// QualityPreset bundles the three image-output knobs: rasterization DPI,
// encoding format, and JPEG compression quality.
type QualityPreset struct {
	DPI     int
	Format  ImageFormat
	Quality int
}

// Built-in quality presets. These are process-wide constants; the medium
// preset is the baseline every resolution starts from.
var qualityPresets = map[string]QualityPreset{
	"low":    {DPI: 72, Format: FormatJPEG, Quality: 60},
	"medium": {DPI: 150, Format: FormatJPEG, Quality: 85},
	"high":   {DPI: 200, Format: FormatJPEG, Quality: 95},
	"ultra":  {DPI: 300, Format: FormatPNG, Quality: 95},
}

// PresetMedium returns the baseline preset used when no quality is requested.
func PresetMedium() QualityPreset {
	return qualityPresets["medium"]
}

// PresetByName looks up a built-in preset by name.
func PresetByName(name string) (QualityPreset, bool) {
	p, ok := qualityPresets[name]
	return p, ok
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(qualityPresets))
	for name := range qualityPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds for custom image settings. Values outside these ranges are
// rejected at options construction.
const (
	MinCustomDPI     = 36
	MaxCustomDPI     = 1200
	MinCustomQuality = 1
	MaxCustomQuality = 100
)

// CustomImageSettings overrides individual fields of the resolved quality
// preset. Nil fields leave the preset value in place. Unlike presets,
// custom settings are validated field by field at options construction.
type CustomImageSettings struct {
	DPI     *int
	Format  *ImageFormat
	Quality *int
}

// Validate checks each present field against its bounds.
func (c CustomImageSettings) Validate() error {
	if c.DPI != nil && (*c.DPI < MinCustomDPI || *c.DPI > MaxCustomDPI) {
		return fmt.Errorf("%w: custom DPI %d out of range [%d, %d]",
			ErrInvalidOptions, *c.DPI, MinCustomDPI, MaxCustomDPI)
	}
	if c.Format != nil && !c.Format.Valid() {
		return fmt.Errorf("%w: custom image format %q", ErrInvalidOptions, *c.Format)
	}
	if c.Quality != nil && (*c.Quality < MinCustomQuality || *c.Quality > MaxCustomQuality) {
		return fmt.Errorf("%w: custom compression quality %d out of range [%d, %d]",
			ErrInvalidOptions, *c.Quality, MinCustomQuality, MaxCustomQuality)
	}
	return nil
}

// clone returns a deep copy so derived options never share pointers.
func (c *CustomImageSettings) clone() *CustomImageSettings {
	if c == nil {
		return nil
	}
	out := &CustomImageSettings{}
	if c.DPI != nil {
		v := *c.DPI
		out.DPI = &v
	}
	if c.Format != nil {
		v := *c.Format
		out.Format = &v
	}
	if c.Quality != nil {
		v := *c.Quality
		out.Quality = &v
	}
	return out
}
