package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/deepval-dev/go-deepval/coerce"
	"github.com/deepval-dev/go-deepval/dedupe"
	"github.com/deepval-dev/go-deepval/mergepatch"
	"github.com/deepval-dev/go-deepval/selector"
	"github.com/deepval-dev/go-deepval/stringify"
	"github.com/deepval-dev/go-deepval/textdiff"
)

func dvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readValue parses one JSON document from path, with "-" meaning stdin.
func readValue(path string) (any, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var v any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// readValues parses one JSON document per file argument, or a single
// document from stdin when no files are given.
func readValues(args []string) ([]any, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	vals := make([]any, len(args))
	for i, arg := range args {
		v, err := readValue(arg)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (cfg *MainConfig) writeValue(cc *cli.Context, v any) error {
	s, err := stringify.Serialize(v, stringify.Pretty(cfg.Pretty))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, s)
	return err
}

func runStringify(cfg *StringifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stringify.Parse(cc, args)
	if err != nil {
		return err
	}
	vals, err := readValues(args)
	if err != nil {
		return err
	}
	opts := []stringify.Option{
		stringify.Pretty(cfg.Pretty),
		stringify.SortKeys(!cfg.KeepKeys),
		stringify.SortSequences(cfg.SortSeqs),
	}
	for _, v := range vals {
		s, err := stringify.Serialize(v, opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}

func runCoerce(cfg *CoerceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Coerce.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.To != "num" && cfg.To != "text" {
		return fmt.Errorf("%w: -to must be num or text, got %q", cli.ErrUsage, cfg.To)
	}
	vals, err := readValues(args)
	if err != nil {
		return err
	}
	opts := []coerce.Option{}
	if cfg.PruneRecords {
		opts = append(opts, coerce.PruneEmptyRecords())
	}
	if cfg.PruneSeqs {
		opts = append(opts, coerce.PruneEmptySequences())
	}
	for _, v := range vals {
		var (
			res  any
			kept bool
		)
		if cfg.To == "num" {
			res, kept = coerce.Numeric(v, opts...)
		} else {
			res, kept = coerce.String(v, opts...)
		}
		if !kept {
			res = nil
		}
		if err := cfg.writeValue(cc, res); err != nil {
			return err
		}
	}
	return nil
}

func runDedupe(cfg *DedupeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dedupe.Parse(cc, args)
	if err != nil {
		return err
	}
	mode, err := dedupe.ParseStringMode(cfg.Strings)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	vals, err := readValues(args)
	if err != nil {
		return err
	}
	opts := []dedupe.Option{dedupe.ForceString(mode)}
	if cfg.Flatten {
		opts = append(opts, dedupe.Flatten())
	}
	for _, v := range vals {
		res, err := dedupe.Dedupe(v, opts...)
		if err != nil {
			return err
		}
		if err := cfg.writeValue(cc, res); err != nil {
			return err
		}
	}
	return nil
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := readValue(args[0])
	if err != nil {
		return err
	}
	b, err := readValue(args[1])
	if err != nil {
		return err
	}
	var out string
	if cfg.colored(cc) {
		out = textdiff.Colored(a, b)
	} else {
		out = textdiff.Diff(a, b)
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch needs a patch file", cli.ErrUsage)
	}
	patch, err := readValue(args[0])
	if err != nil {
		return err
	}
	docs, err := readValues(args[1:])
	if err != nil {
		return err
	}
	for _, doc := range docs {
		var res any
		if cfg.Ops {
			res, err = mergepatch.ApplyOps(doc, patch)
		} else {
			res, err = mergepatch.Apply(doc, patch)
		}
		if err != nil {
			return err
		}
		if err := cfg.writeValue(cc, res); err != nil {
			return err
		}
	}
	return nil
}

func runSelect(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select needs an expression", cli.ErrUsage)
	}
	vals, err := readValues(args[1:])
	if err != nil {
		return err
	}
	for _, v := range vals {
		res, err := selector.Select(v, args[0])
		if err != nil {
			return err
		}
		if cfg.First {
			if len(res) == 0 {
				continue
			}
			if err := cfg.writeValue(cc, res[0]); err != nil {
				return err
			}
			continue
		}
		if err := cfg.writeValue(cc, res); err != nil {
			return err
		}
	}
	return nil
}
