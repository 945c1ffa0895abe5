package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/encode"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Patch && cfg.Text {
		return fmt.Errorf("%w: at most one of -p and -t", cli.ErrUsage)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Value) (bool, error) {
	w := cc.Out
	if cfg.Text {
		if cfg.Reverse {
			a, b = b, a
		}
		ta, tb := &bytes.Buffer{}, &bytes.Buffer{}
		if err := encode.Encode(a, ta, encode.Indent(cfg.Indent)); err != nil {
			return false, err
		}
		if err := encode.Encode(b, tb, encode.Indent(cfg.Indent)); err != nil {
			return false, err
		}
		if ta.String() == tb.String() {
			return false, nil
		}
		_, err := fmt.Fprint(w, libdiff.DiffText(ta.String(), tb.String()))
		return true, err
	}
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if cfg.Patch {
		p := ir.FromRaw(string(d.JSONPatch()), ir.ArrayType)
		return true, encode.Encode(p, w, cfg.encOpts(w)...)
	}
	_, err := fmt.Fprint(w, d)
	return true, err
}
