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

// HTMLConverter writes the document as a single HTML file, one rendered
// fragment per page, delegating page rendering to the page source.
type HTMLConverter struct {
	source pdf.HTMLSource
	log    logger.Logger
}

// NewHTMLConverter creates the HTML converter.
func NewHTMLConverter(source pdf.HTMLSource, log logger.Logger) *HTMLConverter {
	return &HTMLConverter{source: source, log: log.Named("html")}
}

func (c *HTMLConverter) Kind() types.ConversionKind { return types.KindHTML }

// ValidateConversion checks the kind matches and the output parent
// directory is usable.
func (c *HTMLConverter) ValidateConversion(opts types.ConversionOptions) bool {
	return validateFileTarget(types.KindHTML, opts)
}

// Convert renders every page to HTML and assembles one document.
func (c *HTMLConverter) Convert(doc types.Document, opts types.ConversionOptions) (string, error) {
	if !c.ValidateConversion(opts) {
		return "", invalidOptions(types.KindHTML)
	}

	outPath := singleFileOutput(opts)
	if err := ensureParentDir(outPath); err != nil {
		return "", err
	}

	pages, err := c.source.ExtractHTML(doc.Path)
	if err != nil {
		return "", fmt.Errorf("rendering HTML for %s: %w", doc.Filename(), err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=%q>\n", "utf-8")
	if title := doc.Title(); title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", title)
	} else {
		fmt.Fprintf(&b, "<title>%s</title>\n", doc.Stem())
	}
	b.WriteString("</head>\n<body>\n")
	for i, fragment := range pages {
		fmt.Fprintf(&b, "<div class=%q id=%q>\n", "page", fmt.Sprintf("page-%d", i+1))
		b.WriteString(fragment)
		b.WriteString("\n</div>\n")
	}
	b.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	c.log.Info("converted to HTML",
		logger.String("source", doc.Filename()),
		logger.String("output", outPath),
		logger.Int("pages", len(pages)),
	)
	return outPath, nil
}
