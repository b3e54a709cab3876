// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/pdf-converter/internal/container"
	"github.com/pdiddy/pdf-converter/internal/pdf"
	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// PageSource bundles the document capabilities converters draw on:
// per-page text, per-page HTML, and rasterization. *pdf.FitzService
// satisfies it.
type PageSource interface {
	pdf.TextSource
	pdf.HTMLSource
	pdf.Rasterizer
}

// Factory holds the closed mapping from conversion kind to converter. The
// kind set is fixed at construction; excel, powerpoint, epub, rtf, and odt
// are declared kinds with no registered converter and fail at Create.
type Factory struct {
	converters map[types.ConversionKind]Converter
	log        logger.Logger
}

// NewFactory wires one converter per supported kind. The container
// runtime may be nil; the word and markdown converters then validate to
// false but remain resolvable.
func NewFactory(source PageSource, rt container.Runtime, cfg types.ConversionConfig, log logger.Logger) *Factory {
	f := &Factory{
		converters: make(map[types.ConversionKind]Converter),
		log:        log.Named("factory"),
	}
	for _, c := range []Converter{
		NewTextConverter(source, log),
		NewHTMLConverter(source, log),
		NewMarkdownConverter(rt, cfg.MarkdownImage, log),
		NewWordConverter(rt, cfg.WordImage, log),
		NewImageConverter(source, log),
	} {
		f.converters[c.Kind()] = c
	}
	return f
}

// Create resolves the converter for the requested kind.
func (f *Factory) Create(kind types.ConversionKind) (Converter, error) {
	c, ok := f.converters[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			types.ErrUnsupportedConversionType, kind, strings.Join(f.Supported(), ", "))
	}
	return c, nil
}

// IsSupported reports whether a converter is registered for the kind.
func (f *Factory) IsSupported(kind types.ConversionKind) bool {
	_, ok := f.converters[kind]
	return ok
}

// Supported returns the registered kind names in sorted order.
func (f *Factory) Supported() []string {
	kinds := make([]string, 0, len(f.converters))
	for k := range f.converters {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

// Validate reports whether a conversion could run with the given options.
// Resolution or validation failures answer false rather than propagating.
func (f *Factory) Validate(opts types.ConversionOptions) bool {
	if err := opts.Validate(); err != nil {
		f.log.Debug("options failed validation", logger.Err(err))
		return false
	}
	c, err := f.Create(opts.Kind)
	if err != nil {
		return false
	}
	return c.ValidateConversion(opts)
}
