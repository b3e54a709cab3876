// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"github.com/pdiddy/pdf-converter/internal/container"
	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// transcodeConverter covers the kinds produced by piping the PDF through a
// container image that writes the converted document to stdout. Markdown
// uses markitdown; Word uses pdf2docx. The runtime may be nil when no
// container engine was detected; such converters validate to false.
type transcodeConverter struct {
	kind    types.ConversionKind
	image   string
	runtime container.Runtime
	log     logger.Logger
}

// NewMarkdownConverter creates the Markdown converter backed by the given
// container image (typically markitdown:latest).
func NewMarkdownConverter(rt container.Runtime, image string, log logger.Logger) Converter {
	return &transcodeConverter{
		kind:    types.KindMarkdown,
		image:   image,
		runtime: rt,
		log:     log.Named("markdown"),
	}
}

// NewWordConverter creates the Word converter backed by the given
// container image (typically pdf2docx:latest).
func NewWordConverter(rt container.Runtime, image string, log logger.Logger) Converter {
	return &transcodeConverter{
		kind:    types.KindWord,
		image:   image,
		runtime: rt,
		log:     log.Named("word"),
	}
}

func (c *transcodeConverter) Kind() types.ConversionKind { return c.kind }

// ValidateConversion checks the kind, the output location, and that a
// container runtime with the transcoding image is actually present.
func (c *transcodeConverter) ValidateConversion(opts types.ConversionOptions) bool {
	if !validateFileTarget(c.kind, opts) {
		return false
	}
	if c.runtime == nil {
		return false
	}
	return c.runtime.ImageExists(c.image) == nil
}

// Convert pipes the PDF through the transcoding container and writes its
// stdout to the output file.
func (c *transcodeConverter) Convert(doc types.Document, opts types.ConversionOptions) (string, error) {
	if !c.ValidateConversion(opts) {
		return "", invalidOptions(c.kind)
	}

	outPath := singleFileOutput(opts)
	if err := ensureParentDir(outPath); err != nil {
		return "", err
	}

	in, err := os.Open(doc.Path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", doc.Path, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := c.runtime.Run(c.image, in, out); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("transcoding %s with %s: %w", doc.Filename(), c.image, err)
	}

	info, err := out.Stat()
	if err == nil && info.Size() == 0 {
		os.Remove(outPath)
		return "", fmt.Errorf("%s produced empty output for %s", c.image, doc.Filename())
	}

	c.log.Info("transcoded document",
		logger.String("source", doc.Filename()),
		logger.String("output", outPath),
		logger.String("image", c.image),
	)
	return outPath, nil
}
