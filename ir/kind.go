package ir

import "fmt"

// Kind discriminates path nodes. The set is closed: evaluation switches
// over it exhaustively.
type Kind int

const (
	RootKind Kind = iota
	SelfKind
	WildcardKind
	DescendantKind
	SliceKind
	ExpressionKind
	FilterKind
	SelectorKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		RootKind:       "Root",
		SelfKind:       "Self",
		WildcardKind:   "Wildcard",
		DescendantKind: "Descendant",
		SliceKind:      "Slice",
		ExpressionKind: "Expression",
		FilterKind:     "Filter",
		SelectorKind:   "Selector",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Root":       RootKind,
		"Self":       SelfKind,
		"Wildcard":   WildcardKind,
		"Descendant": DescendantKind,
		"Slice":      SliceKind,
		"Expression": ExpressionKind,
		"Filter":     FilterKind,
		"Selector":   SelectorKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		RootKind,
		SelfKind,
		WildcardKind,
		DescendantKind,
		SliceKind,
		ExpressionKind,
		FilterKind,
		SelectorKind,
	}
}
