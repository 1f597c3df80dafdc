package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/LuizArmesto/ujsonpath"
	"github.com/LuizArmesto/ujsonpath/eval"
	"github.com/LuizArmesto/ujsonpath/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path expression", cli.ErrUsage)
	}
	query := args[0]
	if query == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	p, err := ujsonpath.Parse(query)
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", query, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getFile(cfg, cc, arg, p); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, query, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file string, p *ir.Path) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return getReader(cfg, cc.Out, r, p)
}

func getReader(cfg *GetConfig, w io.Writer, r io.Reader, p *ir.Path) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	matches, err := eval.Find(p, doc)
	if err != nil {
		return fmt.Errorf("error evaluating: %w", err)
	}
	return writeMatches(cfg.MainConfig, w, matches)
}
