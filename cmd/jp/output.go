package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/LuizArmesto/ujsonpath/ir"
)

// Colors maps scalar result types to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	String  func(string, ...any) string
	Number  func(string, ...any) string
	Bool    func(string, ...any) string
	Null    func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: fmt.Sprintf,
		String:  color.RGB(8, 196, 16).SprintfFunc(),
		Number:  color.RGB(128, 216, 236).SprintfFunc(),
		Bool:    color.CyanString,
		Null:    color.RGB(168, 0, 196).SprintfFunc(),
	}
}

func (c *Colors) paint(v any, text string) string {
	text = strings.Replace(text, "%", "%%", -1)
	switch v.(type) {
	case string:
		return c.String(text)
	case bool:
		return c.Bool(text)
	case int, int64, uint64, float32, float64:
		return c.Number(text)
	case nil:
		return c.Null(text)
	}
	return c.Default(text)
}

// writeMatches prints one document per match, json by default, yaml with
// -y. Scalars are colorized when colors are on; container results are
// left uncolored.
func writeMatches(cfg *MainConfig, w io.Writer, matches []ir.Match) error {
	colors := cfg.colors(w)
	for _, m := range matches {
		var (
			d   []byte
			err error
		)
		if cfg.Y {
			d, err = yaml.Marshal(m.Value)
		} else {
			d, err = json.Marshal(m.Value)
		}
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		text := strings.TrimRight(string(d), "\n")
		if colors != nil {
			text = colors.paint(m.Value, text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}
	}
	return nil
}
