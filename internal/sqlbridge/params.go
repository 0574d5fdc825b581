package sqlbridge

import (
	"encoding/json"
	"fmt"
)

// bindArgs converts loosely-typed caller values (typically decoded from
// JSON) into driver-bindable arguments. Strings, booleans and nil pass
// through; numbers bind as INTEGER when integral and REAL otherwise.
// Anything else is serialized to its JSON text as a fallback rather than
// rejected.
func bindArgs(values []any) ([]any, error) {
	args := make([]any, len(values))
	for i, v := range values {
		a, err := bindValue(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}

func bindValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string, bool, int, int64, float32:
		return val, nil
	case float64:
		// JSON numbers decode as float64; keep integral values as INTEGER
		// so id comparisons behave.
		if val == float64(int64(val)) {
			return int64(val), nil
		}
		return val, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		if f, err := val.Float64(); err == nil {
			return f, nil
		}
		return val.String(), nil
	default:
		// Nested structures (arrays, objects) bind as their text form.
		b, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("serialize %T: %w", val, err)
		}
		return string(b), nil
	}
}
