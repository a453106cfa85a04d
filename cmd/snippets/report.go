// Report command renders the session summary and JSONL exports.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportTag string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the session report",
	Long: `Report reads back everything the session recorded and writes a Markdown
summary plus per-record-kind JSONL exports into the configured reporting
folder.

Example:
  snippets --session localnet report
  snippets --session localnet report --tag nightly`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportTag, "tag", "", "tag embedded in the report file names (default: report)")
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.Storage().Close()

	summaryFile, err := s.GenerateReport(reportTag)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	fmt.Println("Report written to", summaryFile)
	return nil
}
