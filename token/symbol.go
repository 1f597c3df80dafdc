package token

// Query symbols. Process-wide constants, never mutated.
const (
	Root        = "$"
	Self        = "@"
	Wildcard    = "*"
	Descendant  = ".."
	Escape      = '\\'
	PathSep     = '.'
	BracketL    = '['
	BracketR    = ']'
	ExprL       = '('
	ExprR       = ')'
	SingleQuote = '\''
	DoubleQuote = '"'
	SliceSep    = ':'
	UnionSep    = ','
	AltSep      = '|'
	FilterMark  = '?'
)

// reescape reports whether c must be re-escaped when it occurs inside a
// quoted span, so that later escape-aware splitting does not treat it as
// structural.
func reescape(c byte) bool {
	switch c {
	case UnionSep, SliceSep, AltSep, Escape:
		return true
	}
	return false
}
