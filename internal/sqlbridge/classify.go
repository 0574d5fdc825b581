package sqlbridge

import "strings"

// StatementKind distinguishes row-producing statements from mutations.
type StatementKind int

const (
	StatementWrite StatementKind = iota
	StatementRead
)

// Leading keywords that always produce rows in SQLite.
var readKeywords = []string{"SELECT", "VALUES", "PRAGMA", "EXPLAIN"}

// Classify inspects the statement text and decides whether executing it
// should go through the row-reading path. Classification is keyword-based:
// a statement starting with a read keyword is a read, and any statement
// with a RETURNING clause is routed through the read path so its rows are
// not lost (INSERT ... RETURNING and friends).
func Classify(query string) StatementKind {
	if startsWithReadKeyword(query) {
		return StatementRead
	}
	if hasReturningClause(strings.ToUpper(query)) {
		return StatementRead
	}
	return StatementWrite
}

func startsWithReadKeyword(query string) bool {
	trimmed := strings.ToUpper(strings.TrimSpace(query))
	for _, kw := range readKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

// hasReturningClause reports whether the upper-cased statement contains a
// RETURNING keyword outside of string literals.
func hasReturningClause(upper string) bool {
	inString := false
	for i := 0; i+len("RETURNING") <= len(upper); i++ {
		if upper[i] == '\'' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		if upper[i:i+len("RETURNING")] != "RETURNING" {
			continue
		}
		// Must be delimited by non-identifier characters on both sides.
		if i > 0 && isIdentChar(upper[i-1]) {
			continue
		}
		if end := i + len("RETURNING"); end < len(upper) && isIdentChar(upper[end]) {
			continue
		}
		return true
	}
	return false
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}
