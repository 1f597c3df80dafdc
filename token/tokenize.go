package token

import (
	"strings"

	"github.com/LuizArmesto/ujsonpath/debug"
)

// Tokenize splits query into tokens at unquoted, unescaped occurrences of
// the path separator and brackets. Escapes are kept in the token text for
// the parser to resolve; quoted spans keep their quote characters and gain
// synthetic escapes in front of split-sensitive characters. Tokenize never
// fails: an unterminated quote or trailing escape consumes the rest of the
// input.
func Tokenize(query string) []string {
	var (
		toks      []string
		buf       strings.Builder
		escaped   bool
		quoted    bool
		term      byte
		bracketed bool
		prev      byte
	)
	emit := func() {
		if t := strings.TrimSpace(buf.String()); t != "" {
			toks = append(toks, t)
		}
		buf.Reset()
	}
	query = strings.TrimSpace(query)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case escaped:
			buf.WriteByte(c)
			escaped = false
		case quoted:
			if reescape(c) {
				buf.WriteByte(Escape)
			}
			buf.WriteByte(c)
			if c == term {
				quoted = false
			}
		case c == Escape:
			escaped = true
			buf.WriteByte(c)
		case c == SingleQuote || c == DoubleQuote:
			quoted, term = true, c
			buf.WriteByte(c)
		case c == ExprL:
			quoted, term = true, ExprR
			buf.WriteByte(c)
		case c == BracketL:
			emit()
			buf.WriteByte(c)
			bracketed = true
		case c == BracketR:
			buf.WriteByte(c)
			emit()
			bracketed = false
		case bracketed:
			buf.WriteByte(c)
		case c == PathSep:
			if prev == PathSep && buf.Len() == 0 {
				toks = append(toks, Descendant)
			} else {
				emit()
			}
		default:
			buf.WriteByte(c)
		}
		prev = c
	}
	emit()
	if debug.Lex() {
		debug.Logf("tokenize %q -> %q\n", query, toks)
	}
	return toks
}
