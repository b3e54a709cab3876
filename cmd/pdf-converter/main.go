// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-converter/internal/container"
	"github.com/pdiddy/pdf-converter/internal/convert"
	"github.com/pdiddy/pdf-converter/internal/history"
	"github.com/pdiddy/pdf-converter/internal/pdf"
	"github.com/pdiddy/pdf-converter/internal/secrets"
	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds document passwords loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the pdf-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-converter",
	Short: "Convert PDF documents to text, HTML, Markdown, Word, or images",
	Long: `pdf-converter turns PDF documents into other formats. Text and HTML
extraction and image rendering run in-process through MuPDF; Markdown and
Word conversion run through containerized transcoders when a container
runtime is available.

Image output renders one file per page at a chosen quality preset (low,
medium, high, ultra), with optional per-field DPI, format, and compression
overrides. Use estimate to predict image output size before converting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-converter.yaml or ~/.config/pdf-converter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-converter"))
		}
	}

	viper.SetEnvPrefix("PDF_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadAppConfig layers config-file values over the built-in defaults.
func loadAppConfig() types.AppConfig {
	cfg := types.DefaultAppConfig()

	if v := viper.GetString("conversion.output_dir"); v != "" {
		cfg.Conversion.OutputDir = v
	}
	if v := viper.GetString("conversion.default_kind"); v != "" {
		cfg.Conversion.DefaultKind = types.ConversionKind(v)
	}
	if v := viper.GetString("conversion.markdown_image"); v != "" {
		cfg.Conversion.MarkdownImage = v
	}
	if v := viper.GetString("conversion.word_image"); v != "" {
		cfg.Conversion.WordImage = v
	}
	if v := viper.GetString("image.quality"); v != "" {
		cfg.Image.Quality = v
	}
	if v := viper.GetDuration("fetch.timeout"); v > 0 {
		cfg.Fetch.Timeout = v
	}
	if v := viper.GetString("fetch.user_agent"); v != "" {
		cfg.Fetch.UserAgent = v
	}
	if v := viper.GetInt("fetch.max_retries"); v > 0 {
		cfg.Fetch.MaxRetries = v
	}
	if v := viper.GetString("fetch.input_dir"); v != "" {
		cfg.Fetch.InputDir = v
	}
	if viper.IsSet("history.enabled") {
		cfg.History.Enabled = viper.GetBool("history.enabled")
	}
	if v := viper.GetString("history.dir"); v != "" {
		cfg.History.Dir = v
	}
	if v := viper.GetInt("history.max_list"); v > 0 {
		cfg.History.MaxList = v
	}
	if v := viper.GetString("logging.level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := viper.GetString("logging.encoding"); v != "" {
		cfg.Logging.Encoding = v
	}
	if v := viper.GetStringSlice("logging.output_paths"); len(v) > 0 {
		cfg.Logging.OutputPaths = v
	}

	return cfg
}

// app wires the packages a subcommand needs. Build one per invocation with
// newApp and release it with Close.
type app struct {
	cfg     types.AppConfig
	log     logger.Logger
	pdfs    *pdf.FitzService
	factory *convert.Factory
	usecase *convert.UseCase
	store   *history.Store
}

func newApp() (*app, error) {
	cfg := loadAppConfig()

	log, err := logger.New(
		logger.WithLevel(cfg.Logging.Level),
		logger.WithEncoding(cfg.Logging.Encoding),
		logger.WithOutputPaths(cfg.Logging.OutputPaths...),
		logger.WithRotation(cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays),
	)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	svc := pdf.NewFitzService(log)

	rt, err := container.DetectRuntime()
	if err != nil {
		log.Debug("no container runtime found; markdown and word output unavailable", logger.Err(err))
		rt = nil
	}

	factory := convert.NewFactory(svc, rt, cfg.Conversion, log)

	var store *history.Store
	var recorder convert.HistoryRecorder
	if cfg.History.Enabled {
		store, err = history.NewStore(cfg.History, log)
		if err != nil {
			return nil, fmt.Errorf("opening history store: %w", err)
		}
		recorder = store
	}

	return &app{
		cfg:     cfg,
		log:     log,
		pdfs:    svc,
		factory: factory,
		usecase: convert.NewUseCase(factory, recorder, log),
		store:   store,
	}, nil
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	_ = a.log.Sync()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
