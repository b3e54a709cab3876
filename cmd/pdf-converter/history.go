package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the conversion history",
	Long: `History reads the local conversion log. Use list to show recent
conversions or export to dump the full log as YAML.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent conversions",
	RunE:  runHistoryList,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full conversion log as YAML",
	RunE:  runHistoryExport,
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum records to show (default from config)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return fmt.Errorf("history recording is disabled in the configuration")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = a.cfg.History.MaxList
	}

	records, err := a.store.List(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	for _, r := range records {
		status := "ok"
		if !r.Succeeded() {
			status = "FAILED: " + r.Error
		}
		fmt.Printf("%s  %-10s %s -> %s  %s  [%s]\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.Source,
			r.ResultPath, humanize.Bytes(uint64(r.BytesWritten)), status)
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return fmt.Errorf("history recording is disabled in the configuration")
	}
	return a.store.Export(os.Stdout)
}
