package ir

import (
	"fmt"
	"strings"
)

// Combinator governs how multiple selector keys in one node combine.
type Combinator int

const (
	// Plain is a single key with no combinator.
	Plain Combinator = iota
	// Union keeps the results of every key.
	Union
	// Alternation keeps only the first key that resolves.
	Alternation
)

func (c Combinator) String() string {
	switch c {
	case Plain:
		return "Plain"
	case Union:
		return "Union"
	case Alternation:
		return "Alternation"
	}
	return "<unknown combinator>"
}

// Range is a two-part slice bound. A nil bound is unbounded on that side,
// negative bounds count from the end of the sequence. There is no step.
type Range struct {
	Start, Stop *int
}

// Bounds resolves the range against a sequence of length n, clamping both
// ends the way sequence slicing does.
func (r *Range) Bounds(n int) (int, int) {
	lo, hi := 0, n
	if r.Start != nil {
		lo = clamp(*r.Start, n)
	}
	if r.Stop != nil {
		hi = clamp(*r.Stop, n)
	}
	return lo, hi
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func (r *Range) String() string {
	b := &strings.Builder{}
	if r.Start != nil {
		fmt.Fprintf(b, "%d", *r.Start)
	}
	b.WriteByte(':')
	if r.Stop != nil {
		fmt.Fprintf(b, "%d", *r.Stop)
	}
	return b.String()
}

// Node is one step of a compiled path. Only the value field implied by
// Kind is populated:
//
//   - SliceKind: Slice
//   - ExpressionKind, FilterKind: Expr
//   - SelectorKind: Keys, Comb
//
// The remaining kinds carry no payload. A node whose payload does not
// match its kind is a bug in the parser, not a runtime condition.
type Node struct {
	Kind  Kind
	Slice *Range
	Expr  string
	Keys  []string
	Comb  Combinator
}

func (n *Node) String() string {
	switch n.Kind {
	case SliceKind:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Slice)
	case ExpressionKind, FilterKind:
		return fmt.Sprintf("%s(%q)", n.Kind, n.Expr)
	case SelectorKind:
		return fmt.Sprintf("%s(%s %q)", n.Kind, n.Comb, n.Keys)
	}
	return n.Kind.String()
}

// Path is a compiled query: an ordered node sequence. It is immutable
// after parsing and safe to evaluate concurrently against independent
// documents.
type Path struct {
	Nodes []Node
}

func (p *Path) String() string {
	parts := make([]string, 0, len(p.Nodes))
	for i := range p.Nodes {
		parts = append(parts, p.Nodes[i].String())
	}
	return "Path(" + strings.Join(parts, ", ") + ")"
}
