package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jp").
		WithSynopsis("jp [opts] command [opts]").
		WithDescription("jp is a tool for querying documents with path expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jpMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			NodesCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get values matching a path expression from document files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func NodesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NodesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Nodes, "nodes").
		WithAliases("n").
		WithSynopsis("nodes <path>").
		WithDescription("show the compiled node sequence of a path expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return nodes(cfg, cc, args)
		})
}
