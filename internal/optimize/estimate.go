// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package optimize

import (
	"github.com/dustin/go-humanize"

	"github.com/pdiddy/pdf-converter/pkg/types"
)

// Per-page base output sizes in bytes, keyed by DPI. Derived from observed
// page sizes of mixed text/graphics documents; DPI values not in the table
// fall back to the 150 DPI entry.
var (
	jpegPageBytes = map[int]int64{
		72:  150_000,
		150: 400_000,
		200: 700_000,
		300: 1_200_000,
	}
	pngPageBytes = map[int]int64{
		72:  500_000,
		150: 1_000_000,
		200: 2_000_000,
		300: 3_000_000,
	}
)

// fallbackDPI is the table entry used for DPI values without their own row.
const fallbackDPI = 150

// EstimateSize predicts the total output size for converting pages pages
// at the given settings, without rasterizing anything. JPEG estimates
// scale linearly with compression quality around the quality-85 baseline.
// The second return value is a human-readable rendering of the byte count.
func EstimateSize(pages int, s Settings) (int64, string) {
	table := jpegPageBytes
	if s.Format == types.FormatPNG {
		table = pngPageBytes
	}

	base, ok := table[s.DPI]
	if !ok {
		base = table[fallbackDPI]
	}
	if s.Format == types.FormatJPEG {
		base = int64(float64(base) * float64(s.Quality) / 85.0)
	}

	total := base * int64(pages)
	return total, humanize.Bytes(uint64(total))
}
