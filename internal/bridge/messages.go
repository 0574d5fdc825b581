package bridge

import "encoding/json"

// Request is one command from the front-end shell. Args is decoded per
// command; commands without arguments omit it.
type Request struct {
	ID   int64           `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers exactly one Request, matched by ID. Either Result or
// Error is set, never both.
type Response struct {
	ID     int64  `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Command names, preserved from the original desktop app.
const (
	CmdGetAppDataDir      = "get_app_data_dir"
	CmdGetDatabasePath    = "get_database_path"
	CmdReadWorldSettings  = "read_world_settings"
	CmdWriteWorldSettings = "write_world_settings"
	CmdSelectWorldFile    = "select_world_file"
	CmdExecuteSQL         = "execute_sql"
)

type pathArgs struct {
	Path string `json:"path"`
}

type writeSettingsArgs struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type executeSQLArgs struct {
	DBPath string `json:"dbPath"`
	Query  string `json:"query"`
	Values []any  `json:"values"`
}
