// Interactions command lists the session's transaction ledger.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "List the session's interactions",
	Long: `Interactions lists the transactions recorded during session runs, in the
order they were inserted.

Example:
  snippets --session localnet interactions
  snippets --session localnet interactions --json`,
	Args: cobra.NoArgs,
	RunE: runInteractions,
}

func runInteractions(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.Storage().Close()

	records, err := s.Storage().ListInteractions(s.Name())
	if err != nil {
		return fmt.Errorf("listing interactions: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling interactions: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No interactions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTION\tUSER\tCONTRACT\tTRANSACTION\tOUTPUT")
	for _, record := range records {
		output := "-"
		if record.Output != nil {
			output = compactJSON(record.Output)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			record.ID, record.Action, record.UserAddress, record.ContractAddress,
			record.TransactionHash, output)
	}
	w.Flush()

	fmt.Printf("Total: %d interaction(s)\n", len(records))
	return nil
}
