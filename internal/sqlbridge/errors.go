package sqlbridge

import "fmt"

// Kind identifies the stage at which an execution failed.
type Kind int

const (
	KindConnection Kind = iota // opening the database file
	KindPrepare                // compiling the statement
	KindBind                   // converting parameters
	KindExecute                // running the statement
	KindConvert                // materializing result rows
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "open database"
	case KindPrepare:
		return "prepare statement"
	case KindBind:
		return "bind parameters"
	case KindExecute:
		return "execute statement"
	case KindConvert:
		return "collect rows"
	}
	return "execute"
}

// Error wraps an engine failure with the stage it occurred in, so callers
// can branch on Kind instead of matching message text.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageErr(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}
