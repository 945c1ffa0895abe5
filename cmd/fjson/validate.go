package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/diag"
	"github.com/signadot/fjson/parse"
)

// validate parses every container of each file, reporting diagnostics
// as they occur.  Empty containers are notices and do not fail a file.
func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		rec := &diag.Recorder{}
		sink := diag.SinkFunc(func(level diag.Level, tag, msg string) {
			rec.Log(level, tag, msg)
			if level == diag.Info && cfg.Quiet {
				return
			}
			cfg.sink.Log(level, file+": "+tag, msg)
		})
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		opts := append(cfg.parseOpts(file), parse.ParseEager(true), parse.ParseSink(sink))
		_, err = parse.Parse(string(d), opts...)
		n := rec.Count(diag.Error)
		if err != nil && n == 0 {
			// input conversion errors are not diagnostics
			failed++
			theLog.Error("invalid", "file", file, "error", err)
			continue
		}
		if n != 0 {
			failed++
			theLog.Error("invalid", "file", file, "errors", n)
			continue
		}
		if !cfg.Quiet {
			theLog.Info("valid", "file", file, "notices", rec.Count(diag.Info))
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
