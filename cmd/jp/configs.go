package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output results as json (default)'"`
	Y     bool `cli:"name=y aliases=yaml desc='output results as yaml'"`
	Color bool `cli:"name=color desc='colorize scalar results'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors resolves the -color flag, defaulting to on when writing to a
// terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type NodesConfig struct {
	*MainConfig

	Nodes *cli.Command
}
