// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/pdf-converter/internal/pdf"
	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// TextConverter writes the document's plain text, one page section per
// PDF page. Extraction is delegated entirely to the page source.
type TextConverter struct {
	source pdf.TextSource
	log    logger.Logger
}

// NewTextConverter creates the plain-text converter.
func NewTextConverter(source pdf.TextSource, log logger.Logger) *TextConverter {
	return &TextConverter{source: source, log: log.Named("text")}
}

func (c *TextConverter) Kind() types.ConversionKind { return types.KindText }

// ValidateConversion checks the kind matches and the output parent
// directory is usable.
func (c *TextConverter) ValidateConversion(opts types.ConversionOptions) bool {
	return validateFileTarget(types.KindText, opts)
}

// Convert extracts every page's text and writes a single .txt file with
// page separators.
func (c *TextConverter) Convert(doc types.Document, opts types.ConversionOptions) (string, error) {
	if !c.ValidateConversion(opts) {
		return "", invalidOptions(types.KindText)
	}

	outPath := singleFileOutput(opts)
	if err := ensureParentDir(outPath); err != nil {
		return "", err
	}

	pages, err := c.source.ExtractText(doc.Path)
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", doc.Filename(), err)
	}

	var b strings.Builder
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&b, "--- Page %d ---\n", i+1)
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	c.log.Info("converted to text",
		logger.String("source", doc.Filename()),
		logger.String("output", outPath),
		logger.Int("pages", len(pages)),
	)
	return outPath, nil
}
