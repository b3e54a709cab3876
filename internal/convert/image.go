// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdf-converter/internal/optimize"
	"github.com/pdiddy/pdf-converter/internal/pdf"
	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// ImageConverter rasterizes every page of a document into a
// size-optimized image file. Pages are processed strictly in page order;
// a failure on any page aborts the conversion, leaving earlier pages on
// disk.
type ImageConverter struct {
	rasterizer pdf.Rasterizer
	log        logger.Logger
}

// NewImageConverter creates the image converter.
func NewImageConverter(rasterizer pdf.Rasterizer, log logger.Logger) *ImageConverter {
	return &ImageConverter{rasterizer: rasterizer, log: log.Named("image")}
}

func (c *ImageConverter) Kind() types.ConversionKind { return types.KindImage }

// ValidateConversion checks the kind matches and the output directory is
// usable.
func (c *ImageConverter) ValidateConversion(opts types.ConversionOptions) bool {
	return validateDirTarget(types.KindImage, opts)
}

// Convert rasterizes the document at the resolved DPI and writes one
// optimized image per page into the output directory. It returns the
// directory containing the images.
func (c *ImageConverter) Convert(doc types.Document, opts types.ConversionOptions) (string, error) {
	if !c.ValidateConversion(opts) {
		return "", invalidOptions(types.KindImage)
	}

	dir := imageOutputDir(opts)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %s",
			types.ErrImageConversionFailed, dir, optimize.ClassifyError(err))
	}

	settings := optimize.Resolve(opts)
	images, err := c.rasterizer.Rasterize(doc.Path, settings.DPI, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", types.ErrImageConversionFailed, optimize.ClassifyError(err))
	}

	var rawTotal, encodedTotal int64
	for i, img := range images {
		page := i + 1

		// Approximate pre-compression size from the rasterized
		// dimensions: RGB, three bytes per pixel.
		bounds := img.Bounds()
		rawTotal += int64(bounds.Dx()) * int64(bounds.Dy()) * 3

		if settings.Format == types.FormatJPEG {
			img = optimize.NormalizeForJPEG(img)
		}
		img = optimize.CapDimensions(img, optimize.MaxDimension)

		outPath := filepath.Join(dir, optimize.PageFilename(doc.Stem(), page, settings.Format))
		size, err := encodePage(outPath, img, settings)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %s",
				types.ErrImageConversionFailed, page, optimize.ClassifyError(err))
		}
		encodedTotal += size
	}

	if rawTotal > 0 {
		ratio := (1 - float64(encodedTotal)/float64(rawTotal)) * 100
		c.log.Info("converted to images",
			logger.String("source", doc.Filename()),
			logger.String("output", dir),
			logger.Int("pages", len(images)),
			logger.Int64("bytes", encodedTotal),
			logger.Float64("compression_pct", ratio),
		)
	}
	return dir, nil
}

// EstimateOutputSize predicts the total output size for converting the
// document under the given options. It is pure: no filesystem access, no
// rasterization.
func (c *ImageConverter) EstimateOutputSize(doc types.Document, opts types.ConversionOptions) (int64, string) {
	return optimize.EstimateSize(doc.Pages, optimize.Resolve(opts))
}

// encodePage writes one optimized page image and returns its encoded
// byte size.
func encodePage(path string, img image.Image, settings optimize.Settings) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := optimize.Encode(f, img, settings); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
