package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/LuizArmesto/ujsonpath/ir"
)

func intp(i int) *int { return &i }

type parseTest struct {
	in    string
	nodes []ir.Node
}

func runParse(t *testing.T, tests []parseTest) {
	t.Helper()
	for _, tt := range tests {
		p, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(p.Nodes, tt.nodes) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, p.Nodes, tt.nodes)
		}
	}
}

func sel(comb ir.Combinator, keys ...string) ir.Node {
	return ir.Node{Kind: ir.SelectorKind, Keys: keys, Comb: comb}
}

func TestParseSymbols(t *testing.T) {
	runParse(t, []parseTest{
		{in: "$", nodes: []ir.Node{{Kind: ir.RootKind}}},
		{in: "@.a", nodes: []ir.Node{{Kind: ir.SelfKind}, sel(ir.Plain, "a")}},
		{in: "$..price", nodes: []ir.Node{
			{Kind: ir.RootKind},
			{Kind: ir.DescendantKind},
			sel(ir.Plain, "price"),
		}},
		{in: "store.*", nodes: []ir.Node{sel(ir.Plain, "store"), {Kind: ir.WildcardKind}}},
		{in: "store.book[*]", nodes: []ir.Node{
			sel(ir.Plain, "store"),
			sel(ir.Plain, "book"),
			{Kind: ir.WildcardKind},
		}},
	})
}

func TestParseSelectors(t *testing.T) {
	runParse(t, []parseTest{
		{in: "store.bicycle.color", nodes: []ir.Node{
			sel(ir.Plain, "store"), sel(ir.Plain, "bicycle"), sel(ir.Plain, "color"),
		}},
		// integer indices are selectors too
		{in: "[42]", nodes: []ir.Node{sel(ir.Plain, "42")}},
		{in: "[-1]", nodes: []ir.Node{sel(ir.Plain, "-1")}},
		{in: "[price,title]", nodes: []ir.Node{sel(ir.Union, "price", "title")}},
		{in: "[price, title]", nodes: []ir.Node{sel(ir.Union, "price", "title")}},
		{in: "[level2|level3]", nodes: []ir.Node{sel(ir.Alternation, "level2", "level3")}},
		{in: "a|b", nodes: []ir.Node{sel(ir.Alternation, "a", "b")}},
		{in: `["title"]`, nodes: []ir.Node{sel(ir.Plain, "title")}},
		{in: `['level2']`, nodes: []ir.Node{sel(ir.Plain, "level2")}},
	})
}

func TestParseEscapes(t *testing.T) {
	runParse(t, []parseTest{
		{in: `level\.2`, nodes: []ir.Node{sel(ir.Plain, "level.2")}},
		{in: `level\\2`, nodes: []ir.Node{sel(ir.Plain, `level\2`)}},
		{in: `a\,b`, nodes: []ir.Node{sel(ir.Plain, "a,b")}},
		{in: `a\|b`, nodes: []ir.Node{sel(ir.Plain, "a|b")}},
		{in: `['a,b']`, nodes: []ir.Node{sel(ir.Plain, "a,b")}},
		{in: `["a:b"]`, nodes: []ir.Node{sel(ir.Plain, "a:b")}},
		{in: `\$x`, nodes: []ir.Node{sel(ir.Plain, "$x")}},
	})
}

func TestParseSlices(t *testing.T) {
	runParse(t, []parseTest{
		{in: "[1:-1]", nodes: []ir.Node{{Kind: ir.SliceKind, Slice: &ir.Range{Start: intp(1), Stop: intp(-1)}}}},
		{in: "[1:]", nodes: []ir.Node{{Kind: ir.SliceKind, Slice: &ir.Range{Start: intp(1)}}}},
		{in: "[:2]", nodes: []ir.Node{{Kind: ir.SliceKind, Slice: &ir.Range{Stop: intp(2)}}}},
		{in: "[:]", nodes: []ir.Node{{Kind: ir.SliceKind, Slice: &ir.Range{}}}},
		// non-numeric bounds degrade to a selector, not an error
		{in: "[a:b]", nodes: []ir.Node{sel(ir.Plain, "a:b")}},
	})
}

func TestParseSliceStep(t *testing.T) {
	_, err := Parse("[1:2:3]")
	if !errors.Is(err, ir.ErrNotImplemented) {
		t.Errorf("Parse([1:2:3]) err = %v, want ErrNotImplemented", err)
	}
}

func TestParseExpressions(t *testing.T) {
	runParse(t, []parseTest{
		{in: "[?(@.price > 10)]", nodes: []ir.Node{{Kind: ir.FilterKind, Expr: "@.price > 10"}}},
		{in: "[(1+1)]", nodes: []ir.Node{{Kind: ir.ExpressionKind, Expr: "1+1"}}},
		{in: "?(x)", nodes: []ir.Node{{Kind: ir.FilterKind, Expr: "x"}}},
	})
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if len(p.Nodes) != 0 {
		t.Errorf("Parse(\"\") = %v, want no nodes", p.Nodes)
	}
}
