package sqlbridge

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected StatementKind
	}{
		{"plain select", "SELECT * FROM entries", StatementRead},
		{"lowercase select", "select id from entries", StatementRead},
		{"leading whitespace", "   \n\tSELECT 1", StatementRead},
		{"values", "VALUES (1), (2)", StatementRead},
		{"pragma", "PRAGMA user_version", StatementRead},
		{"explain", "EXPLAIN QUERY PLAN SELECT 1", StatementRead},
		{"insert", "INSERT INTO entries(body) VALUES (?)", StatementWrite},
		{"update", "UPDATE entries SET body = ?", StatementWrite},
		{"delete", "DELETE FROM entries", StatementWrite},
		{"create", "CREATE TABLE entries(id INTEGER)", StatementWrite},
		{"insert returning", "INSERT INTO entries(body) VALUES (?) RETURNING id", StatementRead},
		{"delete returning", "delete from entries returning id", StatementRead},
		{"returning inside string literal", "INSERT INTO t(a) VALUES ('RETURNING')", StatementWrite},
		{"returning as identifier suffix", "UPDATE t SET not_returning = 1", StatementWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.query); got != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", tt.query, got, tt.expected)
			}
		})
	}
}
