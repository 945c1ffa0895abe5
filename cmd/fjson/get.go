package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	files := inputs(args[1:])
	opts := cfg.encOpts(cc.Out)
	yaml := encode.FormatFromOpts(opts...).IsYAML()
	for i, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if err := writeSep(cc.Out, yaml, cfg.WireOut, i < len(files)-1); err != nil {
			return err
		}
	}
	return nil
}
