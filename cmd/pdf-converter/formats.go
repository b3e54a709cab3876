package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-converter/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats available in this environment",
	Long: `Formats lists the conversion formats this installation can produce.
Formats that need a container runtime (markdown, word) only appear when
one is installed.`,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, name := range a.usecase.SupportedFormats() {
		kind := types.ConversionKind(name)
		fmt.Printf("%-10s (%s)\n", name, kind.Ext())
	}
	return nil
}
