// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionRecord is one row of conversion history: what was converted,
// to which kind, where the result landed, and how it went.
type ConversionRecord struct {
	ID           string         `json:"id" yaml:"id"`
	Source       string         `json:"source" yaml:"source"`
	Kind         ConversionKind `json:"kind" yaml:"kind"`
	ResultPath   string         `json:"result_path,omitempty" yaml:"result_path,omitempty"`
	Pages        int            `json:"pages" yaml:"pages"`
	BytesWritten int64          `json:"bytes_written" yaml:"bytes_written"`
	Duration     time.Duration  `json:"duration" yaml:"duration"`
	Error        string         `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
}

// Succeeded reports whether the recorded conversion completed without error.
func (r ConversionRecord) Succeeded() bool {
	return r.Error == ""
}
