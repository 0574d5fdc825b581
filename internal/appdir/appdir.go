// Package appdir resolves the application data directory and the paths
// derived from it. The directory is created on resolution so callers can
// use the returned path directly.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName    = "diaryquest"
	dbFileName = "diary_quest.db"
)

// Dir returns the writable application data directory, creating it if it
// does not exist. A non-empty override takes precedence over the platform
// default ($XDG_DATA_HOME/diaryquest).
func Dir(override string) (string, error) {
	dir := override
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, appName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app data directory: %w", err)
	}
	return dir, nil
}

// DatabasePath returns the path of the diary database inside the data
// directory. An empty filename selects the default database file.
func DatabasePath(override, filename string) (string, error) {
	dir, err := Dir(override)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = dbFileName
	}
	return filepath.Join(dir, filename), nil
}
