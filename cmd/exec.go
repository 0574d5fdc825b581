package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/diaryquest/diaryd/internal/appdir"
	"github.com/diaryquest/diaryd/internal/config"
	"github.com/diaryquest/diaryd/internal/errmsg"
	"github.com/diaryquest/diaryd/internal/sqlbridge"
)

var execDBPath string

var execCmd = &cobra.Command{
	Use:   "exec <query> [param...]",
	Short: "Run a SQL statement against the diary database",
	Long: `Runs one statement against the diary database and prints the result.
Parameters bind positionally; each is parsed as an integer, then a float,
with "null" binding NULL and everything else binding as text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := execDBPath
		if dbPath == "" {
			cfg, err := config.Load()
			if err != nil {
				return errorsWrap(errmsg.OpInitialize, err)
			}
			dbPath, err = appdir.DatabasePath(cfg.DataDir, cfg.DatabaseFile)
			if err != nil {
				return errorsWrap(errmsg.OpDatabasePath, err)
			}
		}

		values := make([]any, len(args)-1)
		for i, raw := range args[1:] {
			values[i] = parseParam(raw)
		}

		env, err := sqlbridge.Execute(dbPath, args[0], values)
		if err != nil {
			return errorsWrap(errmsg.OpExecuteSQL, err)
		}

		return renderEnvelope(env)
	},
}

// parseParam interprets a CLI argument as a typed parameter value.
func parseParam(raw string) any {
	if raw == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func renderEnvelope(env *sqlbridge.Envelope) error {
	if len(env.Columns) == 0 {
		pterm.Printf("%d row(s) affected\n", env.RowsAffected)
		if env.LastInsertID != nil {
			pterm.Printf("last insert id: %d\n", *env.LastInsertID)
		}
		return nil
	}

	table := pterm.TableData{env.Columns}
	for _, row := range env.Rows {
		cells := make([]string, len(env.Columns))
		for i, col := range env.Columns {
			cells[i] = formatValue(row[col])
		}
		table = append(table, cells)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		return err
	}
	pterm.Printf("%d row(s)\n", len(env.Rows))
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	execCmd.Flags().StringVar(&execDBPath, "db", "", "Path to the database file (default: the diary database)")
	rootCmd.AddCommand(execCmd)
}
