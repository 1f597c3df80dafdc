// Package eval resolves compiled paths against document trees.
//
// Documents are the dynamically typed shape produced by JSON or YAML
// decoding: map[string]any, []any and scalars. Evaluation never mutates
// the document, and a compiled path may be evaluated concurrently.
package eval

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/LuizArmesto/ujsonpath/debug"
	"github.com/LuizArmesto/ujsonpath/ir"
	"github.com/LuizArmesto/ujsonpath/token"
)

// item is one fan-out position: either a wrapped value or the not-found
// variant. Keeping misses as explicit items preserves batch cardinality
// through nested fan-out; they are filtered once, at the end.
type item struct {
	m     ir.Match
	found bool
}

func found(v any) item {
	return item{m: ir.NewMatch(v, ""), found: true}
}

var notFound = item{}

// Find resolves p against doc and returns the matches in order, with
// unresolved positions removed. The only error condition is a node kind
// the evaluator does not implement, reported via ir.ErrNotImplemented.
func Find(p *ir.Path, doc any) ([]ir.Match, error) {
	if len(p.Nodes) == 0 {
		return nil, nil
	}
	root := item{m: ir.NewMatch(doc, token.Root), found: true}
	cur := []item{root}
	for i := range p.Nodes {
		next, err := evalNode(&p.Nodes[i], cur, root)
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("eval %s: %d -> %d items\n", &p.Nodes[i], len(cur), len(next))
		}
		cur = next
	}
	out := make([]ir.Match, 0, len(cur))
	for _, it := range cur {
		if it.found {
			out = append(out, it.m)
		}
	}
	return out, nil
}

// evalNode applies n to every position of the current batch and
// concatenates the per-position results, flattening exactly one level. An
// empty result, per position or overall, becomes a single not-found item
// so the batch never silently vanishes mid-path.
func evalNode(n *ir.Node, cur []item, root item) ([]item, error) {
	var out []item
	for _, it := range cur {
		vals, err := evalOne(n, it, root)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			vals = []item{notFound}
		}
		out = append(out, vals...)
	}
	if len(out) == 0 {
		out = []item{notFound}
	}
	return out, nil
}

func evalOne(n *ir.Node, it item, root item) ([]item, error) {
	switch n.Kind {
	case ir.RootKind:
		return []item{root}, nil
	case ir.WildcardKind:
		return wildcard(it), nil
	case ir.SliceKind:
		if n.Slice == nil {
			panic("slice node without range")
		}
		return sliceSeq(n.Slice, it), nil
	case ir.SelectorKind:
		return selector(n, it), nil
	case ir.SelfKind, ir.DescendantKind, ir.ExpressionKind, ir.FilterKind:
		return nil, fmt.Errorf("%w: %s node", ir.ErrNotImplemented, n.Kind)
	}
	return nil, fmt.Errorf("%w: unknown node kind %d", ir.ErrNotImplemented, n.Kind)
}

// wildcard fans out over sequence elements or map values. Go maps carry
// no order, so map values come out in sorted key order for determinism.
func wildcard(it item) []item {
	switch v := it.m.Value.(type) {
	case []any:
		out := make([]item, 0, len(v))
		for _, el := range v {
			out = append(out, found(el))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]item, 0, len(keys))
		for _, k := range keys {
			out = append(out, found(v[k]))
		}
		return out
	}
	return []item{notFound}
}

func sliceSeq(r *ir.Range, it item) []item {
	seq, ok := it.m.Value.([]any)
	if !ok {
		return []item{notFound}
	}
	lo, hi := r.Bounds(len(seq))
	if lo >= hi {
		return nil
	}
	out := make([]item, 0, hi-lo)
	for _, el := range seq[lo:hi] {
		out = append(out, found(el))
	}
	return out
}

// selector accumulates one item per key that resolves; misses are skipped
// rather than recorded, and the combinator is applied to the survivors.
func selector(n *ir.Node, it item) []item {
	var out []item
	for _, key := range n.Keys {
		if v, ok := lookup(it.m.Value, key); ok {
			out = append(out, found(v))
		}
	}
	if n.Comb == ir.Alternation && len(out) > 1 {
		out = out[:1]
	}
	return out
}

// lookup resolves key as a map key or, against a sequence, as an integer
// index with negative values counting from the end.
func lookup(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, false
		}
		if i < 0 {
			i += len(c)
		}
		if i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	return nil, false
}
