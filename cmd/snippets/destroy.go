// Destroy command deletes a session's persistent store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete the session store",
	Long: `Destroy deletes the session's persistent store file. The session config is
left untouched; the next run starts from an empty store.

Example:
  snippets --session localnet destroy`,
	Args: cobra.NoArgs,
	RunE: runDestroy,
}

func runDestroy(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	if err := s.Destroy(); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}

	fmt.Printf("Session %s destroyed.\n", s.Name())
	return nil
}
