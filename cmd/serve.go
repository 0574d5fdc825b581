package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/diaryquest/diaryd/internal/bridge"
	"github.com/diaryquest/diaryd/internal/config"
	"github.com/diaryquest/diaryd/internal/errmsg"
)

var serveQuiet bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve backend commands over stdin/stdout",
	Long:  `Reads newline-delimited JSON requests from stdin and writes one response per request to stdout. This is the process the GUI shell spawns as its native backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errorsWrap(errmsg.OpInitialize, err)
		}

		var log *slog.Logger
		if !serveQuiet {
			// stdout carries responses; logs go to stderr.
			log = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}

		srv := bridge.New(cfg, nil, log)
		return srv.Run(os.Stdin, os.Stdout)
	},
}

func init() {
	serveCmd.Flags().BoolVarP(&serveQuiet, "quiet", "q", false, "Suppress per-command logging on stderr")
	rootCmd.AddCommand(serveCmd)
}
