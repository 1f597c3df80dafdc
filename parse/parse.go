// Package parse compiles tokenized path queries into ir node sequences.
// It is purely lexical: no document is consulted here.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LuizArmesto/ujsonpath/debug"
	"github.com/LuizArmesto/ujsonpath/ir"
	"github.com/LuizArmesto/ujsonpath/token"
)

// Parse compiles query into a reusable path. The only failure mode is a
// construct the grammar recognizes but the implementation does not
// support, reported via ir.ErrNotImplemented; lexical oddities degrade to
// selectors instead of failing.
func Parse(query string) (*ir.Path, error) {
	toks := token.Tokenize(query)
	nodes := make([]ir.Node, 0, len(toks))
	for _, tok := range toks {
		n, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	p := &ir.Path{Nodes: nodes}
	if debug.Parse() {
		debug.Logf("parse %q -> %s\n", query, p)
	}
	return p, nil
}

func parseToken(tok string) (ir.Node, error) {
	switch tok {
	case token.Root:
		return ir.Node{Kind: ir.RootKind}, nil
	case token.Self:
		return ir.Node{Kind: ir.SelfKind}, nil
	case token.Descendant:
		return ir.Node{Kind: ir.DescendantKind}, nil
	case token.Wildcard:
		return ir.Node{Kind: ir.WildcardKind}, nil
	}
	switch tok[0] {
	case token.FilterMark:
		return ir.Node{Kind: ir.FilterKind, Expr: trimExpr(tok[1:])}, nil
	case token.ExprL:
		return ir.Node{Kind: ir.ExpressionKind, Expr: trimExpr(tok)}, nil
	case token.BracketL:
		if tok[len(tok)-1] == token.BracketR {
			return parseBracket(tok[1 : len(tok)-1])
		}
	}
	return selectorNode(tok), nil
}

func parseBracket(inner string) (ir.Node, error) {
	trimmed := strings.TrimSpace(inner)
	switch {
	case hasUnescaped(inner, token.SliceSep):
		return sliceNode(inner)
	case trimmed == token.Wildcard:
		return ir.Node{Kind: ir.WildcardKind}, nil
	case trimmed == "":
		return selectorNode(inner), nil
	case trimmed[0] == token.FilterMark:
		return ir.Node{Kind: ir.FilterKind, Expr: trimExpr(trimmed[1:])}, nil
	case trimmed[0] == token.ExprL:
		return ir.Node{Kind: ir.ExpressionKind, Expr: trimExpr(trimmed)}, nil
	}
	return selectorNode(inner), nil
}

// sliceNode parses a two-part range. Non-numeric pieces mean the colon
// was not a slice after all and the interior degrades to a selector; a
// third piece would be a step, which the evaluator has no semantics for.
func sliceNode(inner string) (ir.Node, error) {
	pieces := splitEscaped(inner, token.SliceSep)
	if len(pieces) > 2 {
		return ir.Node{}, fmt.Errorf("%w: slice step in %q", ir.ErrNotImplemented, inner)
	}
	bounds := make([]*int, 2)
	for i, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		v, err := strconv.Atoi(piece)
		if err != nil {
			return selectorNode(inner), nil
		}
		bounds[i] = &v
	}
	return ir.Node{Kind: ir.SliceKind, Slice: &ir.Range{Start: bounds[0], Stop: bounds[1]}}, nil
}

func selectorNode(raw string) ir.Node {
	comb := ir.Plain
	keys := cleanSplit(raw, token.UnionSep)
	if len(keys) > 1 {
		comb = ir.Union
	} else {
		if len(keys) == 1 {
			raw = keys[0]
		}
		keys = cleanSplit(raw, token.AltSep)
		if len(keys) > 1 {
			comb = ir.Alternation
		}
	}
	for i := range keys {
		keys[i] = unescape(unquote(keys[i]))
	}
	return ir.Node{Kind: ir.SelectorKind, Keys: keys, Comb: comb}
}

// trimExpr strips one pair of surrounding parentheses, tolerating their
// absence on malformed input.
func trimExpr(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == token.ExprL && s[len(s)-1] == token.ExprR {
		return s[1 : len(s)-1]
	}
	return s
}
