package types

import "time"

// ConversionConfig holds defaults for the convert stage.
type ConversionConfig struct {
	// OutputDir is the default directory conversions write into when no
	// explicit output path is given.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DefaultKind is the format used when none is requested (default text).
	DefaultKind ConversionKind `json:"default_kind" yaml:"default_kind"`

	// MarkdownImage is the container image used for Markdown transcoding
	// (default markitdown:latest).
	MarkdownImage string `json:"markdown_image" yaml:"markdown_image"`

	// WordImage is the container image used for Word transcoding
	// (default pdf2docx:latest).
	WordImage string `json:"word_image" yaml:"word_image"`
}

// ImageConfig holds defaults for image output.
type ImageConfig struct {
	// Quality names the default quality preset (default medium).
	Quality string `json:"quality" yaml:"quality"`
}

// FetchConfig holds settings for downloading remote source PDFs.
type FetchConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with download requests
	// (e.g. "pdf-converter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the retry budget for rate-limited downloads.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// InputDir is where downloaded PDFs are stored.
	InputDir string `json:"input_dir" yaml:"input_dir"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled turns history recording on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory containing the history database.
	Dir string `json:"dir" yaml:"dir"`

	// MaxList caps the number of records returned by a listing (default 20).
	MaxList int `json:"max_list" yaml:"max_list"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// Encoding is the log output encoding: json or console.
	Encoding string `json:"encoding" yaml:"encoding"`

	// OutputPaths lists log sinks: stdout, stderr, or file paths.
	OutputPaths []string `json:"output_paths" yaml:"output_paths"`

	// MaxSizeMB, MaxBackups, and MaxAgeDays control file rotation.
	MaxSizeMB  int `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days"`
}

// AppConfig is the root configuration for the pdf-converter CLI.
type AppConfig struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Image      ImageConfig      `json:"image" yaml:"image"`
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch"`
	History    HistoryConfig    `json:"history" yaml:"history"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
}

// DefaultAppConfig returns the configuration used when no config file is
// present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Conversion: ConversionConfig{
			OutputDir:     "output",
			DefaultKind:   KindText,
			MarkdownImage: "markitdown:latest",
			WordImage:     "pdf2docx:latest",
		},
		Image: ImageConfig{
			Quality: "medium",
		},
		Fetch: FetchConfig{
			Timeout:    60 * time.Second,
			UserAgent:  "pdf-converter/0.1",
			MaxRetries: 3,
			InputDir:   "input",
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     "history",
			MaxList: 20,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
			MaxSizeMB:   100,
			MaxBackups:  3,
			MaxAgeDays:  7,
		},
	}
}
