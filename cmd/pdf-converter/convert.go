package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-converter/internal/fetch"
	"github.com/pdiddy/pdf-converter/internal/secrets"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [sources...]",
	Short: "Convert PDF files or URLs to the requested format",
	Long: `Convert transforms one or more PDF sources into the requested output
format. Sources may be local paths or HTTP(S) URLs; remote sources are
downloaded first and cached in the input directory.

Image output writes one file per page into a directory, named
<stem>_page_NNN with the extension of the resolved image format. The
--dpi, --image-format, and --compression flags override individual fields
of the chosen quality preset.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("format", "f", "", "output format (default from config, normally text)")
	convertCmd.Flags().StringP("output", "o", "", "output file or directory (default derived from the source name)")
	convertCmd.Flags().StringP("quality", "q", "", "image quality preset: low, medium, high, or ultra")
	convertCmd.Flags().Int("dpi", 0, "override render DPI (36-1200)")
	convertCmd.Flags().String("image-format", "", "override image format: jpeg or png")
	convertCmd.Flags().Int("compression", 0, "override JPEG/PNG compression quality (1-100)")
	convertCmd.Flags().String("password", "", "password for encrypted sources")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PDF paths or URLs")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	failed := 0
	for _, source := range args {
		if err := convertOne(cmd, a, source); err != nil {
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", source, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

func convertOne(cmd *cobra.Command, a *app, source string) error {
	path, err := localSource(a, source)
	if err != nil {
		return err
	}

	doc, err := a.pdfs.Load(path)
	if err != nil {
		return err
	}

	opts, err := optionsFromFlags(cmd, a.cfg, doc)
	if err != nil {
		return err
	}

	result, err := a.usecase.Execute(doc, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s (%d pages)\n", doc.Filename(), result, doc.Pages)
	return nil
}

// localSource resolves a source argument to a local path, downloading
// remote URLs into the configured input directory.
func localSource(a *app, source string) (string, error) {
	if !fetch.IsRemote(source) {
		return source, nil
	}
	client := &http.Client{Timeout: a.cfg.Fetch.Timeout}
	return fetch.FetchPDF(context.Background(), client, source, a.cfg.Fetch, os.Stderr)
}

// optionsFromFlags assembles validated conversion options from the command
// line, the config defaults, and loaded secrets.
func optionsFromFlags(cmd *cobra.Command, cfg types.AppConfig, doc types.Document) (types.ConversionOptions, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = string(cfg.Conversion.DefaultKind)
	}
	kind, err := types.ParseKind(format)
	if err != nil {
		return types.ConversionOptions{}, err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		if err := os.MkdirAll(cfg.Conversion.OutputDir, 0o755); err != nil {
			return types.ConversionOptions{}, fmt.Errorf("creating output directory: %w", err)
		}
		outputPath = defaultOutput(cfg.Conversion.OutputDir, doc, kind)
	}

	opts, err := types.NewConversionOptions(kind, outputPath)
	if err != nil {
		return types.ConversionOptions{}, err
	}

	quality, _ := cmd.Flags().GetString("quality")
	if quality == "" {
		quality = cfg.Image.Quality
	}
	if quality != "" {
		if opts, err = opts.WithImageQuality(quality); err != nil {
			return types.ConversionOptions{}, err
		}
	}

	custom, set, err := customFromFlags(cmd)
	if err != nil {
		return types.ConversionOptions{}, err
	}
	if set {
		if opts, err = opts.WithCustomImage(custom); err != nil {
			return types.ConversionOptions{}, err
		}
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = secrets.PasswordFor(loadedSecrets, doc.Path)
	}
	if password != "" {
		if opts, err = opts.WithPassword(password); err != nil {
			return types.ConversionOptions{}, err
		}
	}

	return opts, nil
}

// customFromFlags builds per-field image overrides from flags the user
// explicitly set. Unset flags leave the preset untouched.
func customFromFlags(cmd *cobra.Command) (types.CustomImageSettings, bool, error) {
	var custom types.CustomImageSettings
	set := false

	if cmd.Flags().Changed("dpi") {
		dpi, _ := cmd.Flags().GetInt("dpi")
		custom.DPI = &dpi
		set = true
	}
	if cmd.Flags().Changed("image-format") {
		raw, _ := cmd.Flags().GetString("image-format")
		format, err := types.ParseImageFormat(raw)
		if err != nil {
			return types.CustomImageSettings{}, false, err
		}
		custom.Format = &format
		set = true
	}
	if cmd.Flags().Changed("compression") {
		q, _ := cmd.Flags().GetInt("compression")
		custom.Quality = &q
		set = true
	}

	return custom, set, nil
}

// defaultOutput derives the output target from the source name: a file
// beside its siblings for single-file kinds, a per-document directory for
// image output.
func defaultOutput(outputDir string, doc types.Document, kind types.ConversionKind) string {
	if kind == types.KindImage {
		return filepath.Join(outputDir, doc.Stem())
	}
	return filepath.Join(outputDir, doc.Stem()+kind.Ext())
}
