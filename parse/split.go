package parse

import (
	"strings"

	"github.com/LuizArmesto/ujsonpath/token"
)

// splitEscaped splits s on sep, except where sep is preceded by an odd
// number of backslashes. Empty pieces are kept; slice parsing needs them
// to mark unbounded ends.
func splitEscaped(s string, sep byte) []string {
	var (
		parts []string
		buf   strings.Builder
		bs    int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == sep && bs%2 == 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		} else {
			buf.WriteByte(c)
		}
		if c == token.Escape {
			bs++
		} else {
			bs = 0
		}
	}
	parts = append(parts, buf.String())
	return parts
}

// cleanSplit is splitEscaped with space-trimmed pieces and empties
// dropped, the form selector splitting wants.
func cleanSplit(s string, sep byte) []string {
	parts := splitEscaped(s, sep)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasUnescaped(s string, sep byte) bool {
	return len(splitEscaped(s, sep)) > 1
}

// unquote strips one pair of matching surrounding quote characters, if
// the whole string is wrapped in them.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if q != token.SingleQuote && q != token.DoubleQuote {
		return s
	}
	if s[len(s)-1] != q {
		return s
	}
	return s[1 : len(s)-1]
}

// unescape collapses backslash escapes of the structural characters the
// lexer left in place. Unknown escape sequences are kept verbatim.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == token.Escape && i+1 < len(s) {
			switch s[i+1] {
			case token.UnionSep, token.AltSep, token.SliceSep, token.PathSep, token.Escape, '$':
				i++
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
