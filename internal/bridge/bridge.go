// Package bridge is the command shell between the GUI front-end and the
// native backend. It reads newline-delimited JSON requests, dispatches
// each one to the matching backend operation, and writes one response per
// request. Requests run concurrently; the bridge itself holds no shared
// mutable state between calls.
package bridge

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/diaryquest/diaryd/internal/appdir"
	"github.com/diaryquest/diaryd/internal/config"
	"github.com/diaryquest/diaryd/internal/errmsg"
	"github.com/diaryquest/diaryd/internal/sqlbridge"
	"github.com/diaryquest/diaryd/internal/worldfile"
)

// Server dispatches front-end commands to the backend packages.
type Server struct {
	cfg    *config.Config
	picker worldfile.Picker
	log    *slog.Logger

	writeMu sync.Mutex
	out     *json.Encoder
}

func New(cfg *config.Config, picker worldfile.Picker, log *slog.Logger) *Server {
	if picker == nil {
		picker = worldfile.NoDialog{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, picker: picker, log: log}
}

// Run reads requests from r until EOF and writes responses to w. Each
// request is handled on its own goroutine; response order is therefore not
// guaranteed and callers must match responses by id. Run returns when the
// input stream ends and all in-flight requests have completed.
func (s *Server) Run(r io.Reader, w io.Writer) error {
	s.out = json.NewEncoder(w)

	var wg sync.WaitGroup
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.send(Response{Error: errmsg.Format(errmsg.OpDecodeRequest, err)})
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.send(s.handle(req))
		}()
	}

	wg.Wait()
	return scanner.Err()
}

func (s *Server) send(resp Response) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.out.Encode(resp); err != nil {
		s.log.Error("write response", "id", resp.ID, "error", err)
	}
}

func (s *Server) handle(req Request) Response {
	start := time.Now()
	resp := s.dispatch(req)
	if resp.Error != "" {
		s.log.Info("command", "cmd", req.Cmd, "duration", time.Since(start), "error", resp.Error)
	} else {
		s.log.Info("command", "cmd", req.Cmd, "duration", time.Since(start))
	}
	return resp
}

func (s *Server) dispatch(req Request) Response {
	switch req.Cmd {
	case CmdGetAppDataDir:
		dir, err := appdir.Dir(s.cfg.DataDir)
		if err != nil {
			return s.fail(req, errmsg.OpAppDataDir, err)
		}
		return Response{ID: req.ID, Result: dir}

	case CmdGetDatabasePath:
		path, err := appdir.DatabasePath(s.cfg.DataDir, s.cfg.DatabaseFile)
		if err != nil {
			return s.fail(req, errmsg.OpDatabasePath, err)
		}
		return Response{ID: req.ID, Result: path}

	case CmdReadWorldSettings:
		var args pathArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return s.fail(req, errmsg.OpSettingsRead, err)
		}
		content, err := worldfile.Read(args.Path)
		if err != nil {
			return s.fail(req, errmsg.OpSettingsRead, err)
		}
		return Response{ID: req.ID, Result: content}

	case CmdWriteWorldSettings:
		var args writeSettingsArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return s.fail(req, errmsg.OpSettingsWrite, err)
		}
		if err := worldfile.Write(args.Path, args.Content); err != nil {
			return s.fail(req, errmsg.OpSettingsWrite, err)
		}
		return Response{ID: req.ID}

	case CmdSelectWorldFile:
		content, ok, err := worldfile.LoadPicked(s.picker)
		if err != nil {
			return s.fail(req, errmsg.OpSettingsPick, err)
		}
		if !ok {
			// User cancelled; null result, not an error.
			return Response{ID: req.ID}
		}
		return Response{ID: req.ID, Result: content}

	case CmdExecuteSQL:
		var args executeSQLArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return s.fail(req, errmsg.OpExecuteSQL, err)
		}
		env, err := sqlbridge.Execute(args.DBPath, args.Query, args.Values)
		if err != nil {
			return s.fail(req, errmsg.OpExecuteSQL, err)
		}
		return Response{ID: req.ID, Result: env}

	default:
		return Response{
			ID: req.ID,
			Error: errmsg.FormatWith(errmsg.OpDecodeRequest, req.Cmd,
				errors.New("unknown command")),
		}
	}
}

func (s *Server) fail(req Request, op errmsg.Op, err error) Response {
	return Response{ID: req.ID, Error: errmsg.Format(op, err)}
}

func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing arguments")
	}
	return json.Unmarshal(raw, v)
}
