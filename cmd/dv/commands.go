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

	return cli.NewCommandAt(&cfg.Main, "dv").
		WithSynopsis("dv [opts] command [opts]").
		WithDescription("dv is a tool for working with deep values as JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dvMain(cfg, cc, args)
		}).
		WithSubs(
			StringifyCommand(cfg),
			CoerceCommand(cfg),
			DedupeCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			SelectCommand(cfg))
}

func StringifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StringifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stringify, "stringify").
		WithAliases("s", "st").
		WithSynopsis("stringify [opts] [files]").
		WithDescription("render documents as stable, key-sorted text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runStringify(cfg, cc, args)
		})
}

func CoerceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CoerceConfig{MainConfig: mainCfg, To: "num"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Coerce, "coerce").
		WithAliases("c", "co").
		WithSynopsis("coerce [-to num|text] [opts] [files]").
		WithDescription("deep-coerce document leaves toward numbers or text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runCoerce(cfg, cc, args)
		})
}

func DedupeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DedupeConfig{MainConfig: mainCfg, Strings: "off"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dedupe, "dedupe").
		WithAliases("dd").
		WithSynopsis("dedupe [opts] [files]").
		WithDescription("remove structurally equal elements from array documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runDedupe(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("line-diff the stable serializations of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-ops] <patchfile> [files]").
		WithDescription("apply a merge patch (RFC 7386) or operation list (RFC 6902)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("sel").
		WithSynopsis("select <expr> [files]").
		WithDescription("keep array elements matching an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSelect(cfg, cc, args)
		})
}
