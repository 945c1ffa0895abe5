package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/encode"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	target := inputs(args[1:])[0]
	doc, err := getObjFile(cc, target, cfg.parseOpts(target)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	res, err := patch.Apply(doc, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	return writeResult(cfg.MainConfig, cc, res)
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Create {
		if len(args) != 2 {
			return fmt.Errorf("%w: merge -c requires 2 args, got %v", cli.ErrUsage, args)
		}
		from, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		to, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		mp, err := patch.CreateMerge(from, to)
		if err != nil {
			return err
		}
		return writeResult(cfg.MainConfig, cc, ir.FromRaw(string(mp), ir.ObjectType))
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: merge requires a merge patch file and at most one document", cli.ErrUsage)
	}
	mp, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	target := inputs(args[1:])[0]
	doc, err := getObjFile(cc, target, cfg.parseOpts(target)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	res, err := patch.Merge(doc, mp)
	if err != nil {
		return fmt.Errorf("error merging into %s: %w", target, err)
	}
	return writeResult(cfg.MainConfig, cc, res)
}

func writeResult(cfg *MainConfig, cc *cli.Context, v *ir.Value) error {
	opts := cfg.encOpts(cc.Out)
	if err := encode.Encode(v, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return writeSep(cc.Out, encode.FormatFromOpts(opts...).IsYAML(), cfg.WireOut, false)
}
