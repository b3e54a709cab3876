package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [source]",
	Short: "Print a YAML summary of a PDF document",
	Long: `Inspect loads a PDF and prints its page count, size, encryption
status, and embedded metadata as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// documentSummary is the YAML shape printed by inspect.
type documentSummary struct {
	Path      string            `yaml:"path"`
	Pages     int               `yaml:"pages"`
	Size      string            `yaml:"size"`
	Encrypted bool              `yaml:"encrypted"`
	Title     string            `yaml:"title,omitempty"`
	Author    string            `yaml:"author,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
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
	encrypted, err := a.pdfs.IsEncrypted(path)
	if err != nil {
		return err
	}
	size, err := doc.Size()
	if err != nil {
		return err
	}

	summary := documentSummary{
		Path:      doc.Path,
		Pages:     doc.Pages,
		Size:      humanize.Bytes(uint64(size)),
		Encrypted: encrypted,
		Title:     doc.Title(),
		Author:    doc.Author(),
		Metadata:  doc.Metadata,
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(summary)
}
