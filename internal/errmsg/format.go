// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Data directory operations
	OpAppDataDir   Op = "resolve app data directory"
	OpDatabasePath Op = "resolve database path"

	// World settings operations
	OpSettingsRead  Op = "read world settings file"
	OpSettingsWrite Op = "write world settings file"
	OpSettingsPick  Op = "select world settings file"

	// Database operations
	OpExecuteSQL Op = "execute SQL statement"

	// Shell operations
	OpDecodeRequest Op = "decode request"

	// Initialization
	OpInitialize Op = "initialize backend"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
