package ir

import "errors"

var (
	// ErrNotImplemented marks node kinds the grammar recognizes but the
	// evaluator does not yet support. It is distinguishable from an empty
	// result so callers can tell an unsupported query from no match.
	ErrNotImplemented = errors.New("not implemented")
)
