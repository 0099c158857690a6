package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='indent output'"`
	Color  bool `cli:"name=color desc='color diff output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colored reports whether diff output gets color: an explicit -color flag
// wins, otherwise terminals do and pipes don't.
func (cfg *MainConfig) colored(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type StringifyConfig struct {
	*MainConfig
	SortSeqs bool `cli:"name=sortseq desc='sort sequence elements'"`
	KeepKeys bool `cli:"name=keeporder desc='keep record field order instead of sorting keys'"`

	Stringify *cli.Command
}

type CoerceConfig struct {
	*MainConfig
	To           string `cli:"name=to desc='coercion target: num or text' default=num"`
	PruneRecords bool   `cli:"name=prune-records desc='drop records emptied by coercion'"`
	PruneSeqs    bool   `cli:"name=prune-seqs desc='drop sequences emptied by coercion'"`

	Coerce *cli.Command
}

type DedupeConfig struct {
	*MainConfig
	Flatten bool   `cli:"name=flatten desc='flatten nested containers before dedup'"`
	Strings string `cli:"name=strings desc='force-to-string mode: off, scalars, primitives, all' default=off"`

	Dedupe *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Ops bool `cli:"name=ops desc='treat the patch as an RFC 6902 operation list'"`

	Patch *cli.Command
}

type SelectConfig struct {
	*MainConfig
	First bool `cli:"name=first desc='print only the first match'"`

	Select *cli.Command
}
