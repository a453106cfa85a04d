// Package main provides the snippets CLI, a thin inspection and maintenance
// surface over session stores. Scenario authors drive sessions from Go test
// code; the CLI covers what happens after a run: listing recorded state,
// generating reports, and destroying stores.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/snippets/pkg/types"
)

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the CLI exit code: user errors (bad flags,
// missing or invalid config, unknown names) exit 1, everything else exits 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrSessionConfigNotFound),
		errors.Is(err, types.ErrBadSessionConfig),
		errors.Is(err, types.ErrBreadcrumbNotFound),
		errors.Is(err, types.ErrNotFound):
		return exitUserError
	}
	return exitSysError
}
