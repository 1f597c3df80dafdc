// Package ujsonpath compiles JSONPath-like query strings and evaluates
// them against decoded document trees.
//
// A query is compiled once with [Parse] and may then be evaluated against
// any number of documents, concurrently:
//
//	p, err := ujsonpath.Parse("store.book[*].author")
//	...
//	matches, err := eval.Find(p, doc)
//
// [Find] bundles both steps for one-shot use. Documents are the shape
// produced by JSON or YAML decoding into any: map[string]any, []any and
// scalars.
package ujsonpath

import (
	"github.com/LuizArmesto/ujsonpath/eval"
	"github.com/LuizArmesto/ujsonpath/ir"
	"github.com/LuizArmesto/ujsonpath/parse"
)

// Parse compiles query into a reusable path.
func Parse(query string) (*ir.Path, error) {
	return parse.Parse(query)
}

// MustParse is Parse for compiled-in queries; it panics on error.
func MustParse(query string) *ir.Path {
	p, err := parse.Parse(query)
	if err != nil {
		panic(err)
	}
	return p
}

// Find compiles query and evaluates it against doc in one call.
func Find(query string, doc any) ([]ir.Match, error) {
	p, err := parse.Parse(query)
	if err != nil {
		return nil, err
	}
	return eval.Find(p, doc)
}

// Values strips the match wrappers, returning the bare document values in
// order.
func Values(matches []ir.Match) []any {
	vals := make([]any, 0, len(matches))
	for _, m := range matches {
		vals = append(vals, m.Value)
	}
	return vals
}
