// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package optimize implements the image-optimization engine: quality
// preset resolution, JPEG alpha normalization, dimension capping,
// format-specific encoding, and output size estimation.
package optimize

import "github.com/pdiddy/pdf-converter/pkg/types"

// Settings is the fully resolved trio of image-output knobs after preset
// overlay and custom overrides.
type Settings struct {
	DPI     int
	Format  types.ImageFormat
	Quality int
}

// Resolve computes the effective settings for a request. Resolution starts
// from the medium baseline; a named preset replaces all three fields; any
// custom field then overrides its counterpart, so custom values win over
// the preset.
func Resolve(opts types.ConversionOptions) Settings {
	base := types.PresetMedium()
	if opts.ImageQuality != "" {
		if p, ok := types.PresetByName(opts.ImageQuality); ok {
			base = p
		}
	}

	s := Settings{DPI: base.DPI, Format: base.Format, Quality: base.Quality}
	if c := opts.Custom; c != nil {
		if c.DPI != nil {
			s.DPI = *c.DPI
		}
		if c.Format != nil {
			s.Format = *c.Format
		}
		if c.Quality != nil {
			s.Quality = *c.Quality
		}
	}
	return s
}
