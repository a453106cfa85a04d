// Root command and session wiring for the snippets CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/snippets/internal/session"
)

// Global flag values.
var (
	flagSession string
	flagFolder  string
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Snippets inspects and maintains contract test sessions",
	Long: `Snippets is the companion CLI of the contract test harness. Sessions are
driven from Go test code; snippets reads the session store afterwards to list
recorded breadcrumbs and interactions, generate reports, and destroy stores.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session name (required)")
	rootCmd.PersistentFlags().StringVar(&flagFolder, "folder", ".", "folder holding the session config")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(breadcrumbsCmd)
	rootCmd.AddCommand(interactionsCmd)
	rootCmd.AddCommand(destroyCmd)
}

// loadSession opens the session named by the global flags. Callers close the
// underlying store when done.
func loadSession() (*session.Session, error) {
	if flagSession == "" {
		return nil, fmt.Errorf("--session is required")
	}
	return session.Load(flagSession, flagFolder)
}
