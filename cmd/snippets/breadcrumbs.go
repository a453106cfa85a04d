// Breadcrumbs command lists the session's named values.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukaforge/snippets/pkg/types"
)

var breadcrumbsType string

var breadcrumbsCmd = &cobra.Command{
	Use:   "breadcrumbs",
	Short: "List the session's breadcrumbs",
	Long: `Breadcrumbs lists the named values the session recorded, latest value per
name.

Use --type to filter by the breadcrumb type tag.

Example:
  snippets --session localnet breadcrumbs
  snippets --session localnet breadcrumbs --type address
  snippets --session localnet breadcrumbs --json`,
	Args: cobra.NoArgs,
	RunE: runBreadcrumbs,
}

func init() {
	breadcrumbsCmd.Flags().StringVar(&breadcrumbsType, "type", "", "filter by type (address, token, breadcrumb, ...)")
}

func runBreadcrumbs(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.Storage().Close()

	var records []*types.BreadcrumbRecord
	if breadcrumbsType != "" {
		records, err = s.Storage().ListBreadcrumbsByType(s.Name(), breadcrumbsType)
	} else {
		records, err = s.Storage().ListBreadcrumbs(s.Name())
	}
	if err != nil {
		return fmt.Errorf("listing breadcrumbs: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling breadcrumbs: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printBreadcrumbTable(records)
	return nil
}

func printBreadcrumbTable(records []*types.BreadcrumbRecord) {
	if len(records) == 0 {
		fmt.Println("No breadcrumbs found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tPAYLOAD")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", record.Name, record.Type, compactJSON(record.Payload))
	}
	w.Flush()

	fmt.Printf("Total: %d breadcrumb(s)\n", len(records))
}

// compactJSON renders a payload on one line, truncated for table display.
func compactJSON(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return "?"
	}
	const limit = 60
	if len(data) > limit {
		return string(data[:limit-3]) + "..."
	}
	return string(data)
}
