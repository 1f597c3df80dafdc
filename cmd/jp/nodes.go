package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/LuizArmesto/ujsonpath"
)

func nodes(cfg *NodesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Nodes.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: nodes requires one argument, a path expression", cli.ErrUsage)
	}
	p, err := ujsonpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	for i := range p.Nodes {
		n := &p.Nodes[i]
		kind, err := n.Kind.MarshalText()
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%d\t%s\t%s\n", i, kind, n)
	}
	return nil
}
