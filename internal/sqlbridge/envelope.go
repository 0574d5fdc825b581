package sqlbridge

// Row maps column names to converted result values for one result row.
// Values are one of nil, int64, float64 or string.
type Row map[string]any

// Envelope is the uniform result of executing one statement. Read
// statements populate Columns and Rows; writes populate RowsAffected and
// LastInsertID. The JSON shape matches what the desktop front-end consumes.
type Envelope struct {
	Columns      []string `json:"columns"`
	Rows         []Row    `json:"rows"`
	RowsAffected int64    `json:"rowsAffected"`
	LastInsertID *int64   `json:"lastInsertId,omitempty"`
}

// resultValue coerces a driver value into the closed result-value set.
// BLOB columns are not representable in the envelope and become nil; this
// is a documented information-loss boundary, not an error.
func resultValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case int64:
		return val
	case float64:
		return val
	case string:
		return val
	case []byte:
		return nil
	case bool:
		return val
	default:
		return nil
	}
}
