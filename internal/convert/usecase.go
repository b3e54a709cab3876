// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// HistoryRecorder receives a record of every attempted conversion.
// Recording is best effort; a recorder failure never fails a conversion.
type HistoryRecorder interface {
	Record(rec types.ConversionRecord) error
}

// UseCase orchestrates one conversion: precondition checks, converter
// resolution, execution, and failure wrapping.
type UseCase struct {
	factory *Factory
	history HistoryRecorder
	log     logger.Logger
}

// NewUseCase creates the conversion use case. history may be nil to
// disable recording.
func NewUseCase(factory *Factory, history HistoryRecorder, log logger.Logger) *UseCase {
	return &UseCase{factory: factory, history: history, log: log.Named("convert")}
}

// Execute runs the conversion and returns the result path: the converted
// file, or the directory of page images for the image kind. Any converter
// failure is wrapped with the document name and target kind so the cause
// is never lost.
func (u *UseCase) Execute(doc types.Document, opts types.ConversionOptions) (string, error) {
	start := time.Now()
	u.log.Info("starting conversion",
		logger.String("source", doc.Filename()),
		logger.String("kind", opts.Kind.String()),
	)

	// The source may have moved since the document was loaded.
	if _, err := os.Stat(doc.Path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", types.ErrSourceNotFound, doc.Path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", types.ErrPermissionDenied, doc.Path)
		}
		return "", fmt.Errorf("stat %s: %w", doc.Path, err)
	}

	if !u.factory.Validate(opts) {
		return "", fmt.Errorf("%w: %s for %s conversion", types.ErrInvalidOptions, opts, opts.Kind)
	}

	converter, err := u.factory.Create(opts.Kind)
	if err != nil {
		return "", err
	}

	result, err := converter.Convert(doc, opts)
	u.record(doc, opts, result, err, time.Since(start))
	if err != nil {
		u.log.Error("conversion failed",
			logger.String("source", doc.Filename()),
			logger.String("kind", opts.Kind.String()),
			logger.Err(err),
		)
		return "", fmt.Errorf("%w: %s to %s: %w",
			types.ErrConversionFailed, doc.Filename(), opts.Kind, err)
	}

	u.log.Info("conversion complete",
		logger.String("source", doc.Filename()),
		logger.String("result", result),
	)
	return result, nil
}

// ValidateConversion is a read-only precheck: it reports whether Execute
// would pass its preconditions. No state is mutated and no I/O happens
// beyond existence checks.
func (u *UseCase) ValidateConversion(doc types.Document, opts types.ConversionOptions) bool {
	if _, err := os.Stat(doc.Path); err != nil {
		return false
	}
	if !u.factory.IsSupported(opts.Kind) {
		return false
	}
	return u.factory.Validate(opts)
}

// SupportedFormats returns the names of the kinds with a registered
// converter, sorted.
func (u *UseCase) SupportedFormats() []string {
	return u.factory.Supported()
}

// record persists the outcome to history when a recorder is attached.
func (u *UseCase) record(doc types.Document, opts types.ConversionOptions, result string, convErr error, took time.Duration) {
	if u.history == nil {
		return
	}
	rec := types.ConversionRecord{
		Source:     doc.Path,
		Kind:       opts.Kind,
		ResultPath: result,
		Pages:      doc.Pages,
		Duration:   took,
	}
	if convErr != nil {
		rec.Error = convErr.Error()
	} else {
		rec.BytesWritten = resultSize(result)
	}
	if err := u.history.Record(rec); err != nil {
		u.log.Warn("recording conversion history", logger.Err(err))
	}
}

// resultSize totals the bytes at a result path: the file size, or the sum
// of the directory's immediate files for image output.
func resultSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	var total int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if fi, err := entry.Info(); err == nil {
			total += fi.Size()
		}
	}
	return total
}
