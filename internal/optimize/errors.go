// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package optimize

import (
	"os"
	"strings"
)

// ClassifyError maps a rasterization or encoding failure onto a stable,
// user-facing reason when the underlying error matches a known pattern.
// Unrecognized errors come back verbatim.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "fitz") || strings.Contains(lower, "mupdf"):
		return "PDF rasterization backend failed; check the MuPDF installation"
	case os.IsNotExist(err) || strings.Contains(lower, "no such file"):
		return "PDF file not found or inaccessible"
	case os.IsPermission(err) || strings.Contains(lower, "permission denied"):
		return "permission denied; check file permissions"
	case strings.Contains(lower, "unknown format") || strings.Contains(lower, "unsupported image"):
		return "pixel decoder does not support the rasterized page format"
	}
	return msg
}
