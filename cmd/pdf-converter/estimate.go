package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-converter/internal/convert"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [source]",
	Short: "Predict the output size of an image conversion",
	Long: `Estimate predicts the total size of image output for a PDF without
rendering anything. The prediction uses fixed per-page figures for each
DPI and format, scaled by compression quality for JPEG output.`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringP("quality", "q", "", "image quality preset: low, medium, high, or ultra")
	estimateCmd.Flags().Int("dpi", 0, "override render DPI (36-1200)")
	estimateCmd.Flags().String("image-format", "", "override image format: jpeg or png")
	estimateCmd.Flags().Int("compression", 0, "override JPEG/PNG compression quality (1-100)")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	path, err := localSource(a, args[0])
	if err != nil {
		return err
	}
	doc, err := a.pdfs.Load(path)
	if err != nil {
		return err
	}

	// The output path is never written to during estimation; it only has
	// to pass option validation.
	opts, err := types.NewConversionOptions(types.KindImage, a.cfg.Conversion.OutputDir)
	if err != nil {
		return err
	}

	quality, _ := cmd.Flags().GetString("quality")
	if quality == "" {
		quality = a.cfg.Image.Quality
	}
	if quality != "" {
		if opts, err = opts.WithImageQuality(quality); err != nil {
			return err
		}
	}
	custom, set, err := customFromFlags(cmd)
	if err != nil {
		return err
	}
	if set {
		if opts, err = opts.WithCustomImage(custom); err != nil {
			return err
		}
	}

	conv, err := a.factory.Create(types.KindImage)
	if err != nil {
		return err
	}
	ic, ok := conv.(*convert.ImageConverter)
	if !ok {
		return fmt.Errorf("image converter does not support estimation")
	}

	bytes, human := ic.EstimateOutputSize(doc, opts)
	fmt.Printf("%s: %d pages, estimated image output %s (%d bytes)\n",
		doc.Filename(), doc.Pages, human, bytes)
	return nil
}
