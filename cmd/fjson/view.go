package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/encode"
	"github.com/signadot/fjson/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return render(cfg.MainConfig, cc, inputs(args), cfg.Eager, cfg.WireOut)
}

func compact(cfg *CompactConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compact.Parse(cc, args)
	if err != nil {
		return err
	}
	return render(cfg.MainConfig, cc, inputs(args), false, true)
}

func render(cfg *MainConfig, cc *cli.Context, files []string, eager, wire bool) error {
	opts := append(cfg.encOpts(cc.Out), encode.EncodeWire(wire))
	yaml := encode.FormatFromOpts(opts...).IsYAML()
	for i, file := range files {
		v, err := getObjFile(cc, file, append(cfg.parseOpts(file), parse.ParseEager(eager))...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(v, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if err := writeSep(cc.Out, yaml, wire, i < len(files)-1); err != nil {
			return err
		}
	}
	return nil
}

// writeSep ends a document.  Wire JSON has no trailing newline of its
// own, and YAML documents are separated by "---".
func writeSep(w io.Writer, yaml, wire, more bool) error {
	var sep string
	switch {
	case yaml && more:
		sep = "---\n"
	case !yaml && wire:
		sep = "\n"
	}
	_, err := io.WriteString(w, sep)
	return err
}
