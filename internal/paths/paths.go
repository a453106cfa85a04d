// Package paths resolves session file locations by convention: a session
// named "foo" is configured by foo.session.json and persisted in
// foo.session.sqlite, kept next to each other.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dukaforge/snippets/pkg/types"
)

// File name suffixes for the two session files.
const (
	ConfigSuffix  = ".session.json"
	StorageSuffix = ".session.sqlite"
)

// ResolveSessionConfig locates the config file for the given session, first
// in folder, then in its parent. Returns ErrSessionConfigNotFound when
// neither exists.
func ResolveSessionConfig(sessionID, folder string) (string, error) {
	candidate := filepath.Join(folder, sessionID+ConfigSuffix)
	if fileExists(candidate) {
		return filepath.Abs(candidate)
	}

	// Fall back to the parent folder: suites often keep one shared config
	// above several scenario folders.
	candidate = filepath.Join(folder, "..", sessionID+ConfigSuffix)
	if fileExists(candidate) {
		return filepath.Abs(candidate)
	}

	return "", fmt.Errorf("%w: %s in %s or its parent", types.ErrSessionConfigNotFound, sessionID+ConfigSuffix, folder)
}

// StorageFile returns the deterministic store file path for a session,
// placed in the folder holding its config file.
func StorageFile(configFile, sessionID string) string {
	return filepath.Join(filepath.Dir(configFile), sessionID+StorageSuffix)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
