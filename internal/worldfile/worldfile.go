// Package worldfile handles the plain-text world settings file the diary
// app keeps alongside its database, and the file-picker hook used to let
// the user import one.
package worldfile

import (
	"fmt"
	"os"
)

// Read returns the content of the world settings file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read world settings file: %w", err)
	}
	return string(data), nil
}

// Write replaces the world settings file at path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write world settings file: %w", err)
	}
	return nil
}

// Picker is the modal file dialog the host shell provides. Pick blocks
// until the user selects a file or cancels; ok is false on cancel.
type Picker interface {
	Pick() (path string, ok bool, err error)
}

// LoadPicked asks the picker for a file and returns its content. A
// cancelled dialog returns ok=false with no error.
func LoadPicked(p Picker) (content string, ok bool, err error) {
	path, ok, err := p.Pick()
	if err != nil || !ok {
		return "", false, err
	}
	content, err = Read(path)
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// NoDialog is the Picker used when no GUI shell is attached; every Pick
// fails so callers surface a clear capability error.
type NoDialog struct{}

func (NoDialog) Pick() (string, bool, error) {
	return "", false, fmt.Errorf("no file dialog available")
}
