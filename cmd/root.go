// Package cmd provides the command-line interface for the diaryd backend
// bridge. The serve command runs the NDJSON shell the GUI talks to; exec
// is a debugging convenience for running statements against the diary
// database by hand.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diaryquest/diaryd/internal/errmsg"
)

var rootCmd = &cobra.Command{
	Use:           "diaryd",
	Short:         "Native backend bridge for the DiaryQuest desktop app",
	Long:          `diaryd exposes the DiaryQuest native backend: app data directory resolution, world settings file I/O, and SQL execution against the diary database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// errorsWrap turns an internal error into the user-facing message shape.
func errorsWrap(op errmsg.Op, err error) error {
	return errors.New(errmsg.Format(op, err))
}
