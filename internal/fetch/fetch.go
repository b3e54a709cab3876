// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads remote source PDFs so the converter can accept
// http(s) URLs as well as local paths.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-converter/internal/httputil"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// pdfMagic is the signature every PDF body must start with.
var pdfMagic = []byte("%PDF-")

// IsRemote reports whether source names an http(s) URL rather than a
// local path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// FetchPDF downloads the PDF at rawURL into cfg.InputDir and returns the
// local path. The body is written to a temporary file and renamed on
// success; a body that does not start with the PDF signature is rejected.
// An existing destination file is reused without a request.
func FetchPDF(ctx context.Context, client *http.Client, rawURL string, cfg types.FetchConfig, w io.Writer) (string, error) {
	destPath, err := destination(rawURL, cfg.InputDir)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already downloaded)\n", filepath.Base(destPath))
		return destPath, nil
	}

	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating input directory %s: %w", cfg.InputDir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	fmt.Fprintf(w, "downloading: %s\n", rawURL)
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	if err := writeVerified(resp.Body, destPath); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "downloaded: %s\n", filepath.Base(destPath))
	return destPath, nil
}

// writeVerified streams body to destPath through a temp file, verifying
// the PDF signature before the rename makes the file visible.
func writeVerified(body io.Reader, destPath string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(body, head); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: response too short to be a PDF", types.ErrInvalidFormat)
	}
	if string(head) != string(pdfMagic) {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: response does not start with %%PDF", types.ErrInvalidFormat)
	}

	_, copyErr := io.Copy(tmpFile, io.MultiReader(strings.NewReader(string(head)), body))
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// destination derives the local file name from the URL path, defaulting
// to document.pdf when the URL has no usable base name.
func destination(rawURL, inputDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	base := filepath.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		base = "document.pdf"
	}
	if !strings.EqualFold(filepath.Ext(base), ".pdf") {
		base += ".pdf"
	}
	return filepath.Join(inputDir, base), nil
}
