package ir

import (
	"encoding/json"
	"fmt"
)

// Match is a resolved document value with optional provenance. Path is
// populated for the evaluation seed only; per-step provenance is reserved
// for future work.
type Match struct {
	Value any
	Path  string
}

// NewMatch wraps value. Wrapping a Match copies its inner payload instead
// of nesting, so wrapping is idempotent.
func NewMatch(value any, path string) Match {
	if m, ok := value.(Match); ok {
		value = m.Value
	}
	return Match{Value: value, Path: path}
}

func (m Match) String() string {
	d, err := json.Marshal(m.Value)
	if err != nil {
		return fmt.Sprintf("Match(value=%v, path=%q)", m.Value, m.Path)
	}
	return fmt.Sprintf("Match(value=%s, path=%q)", d, m.Path)
}
