package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/fjson/diag"
	"github.com/signadot/fjson/encode"
	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width' default=2"`
	Atomic  bool `cli:"name=atomic desc='discard partial results on parse errors'"`
	Gops    bool `cli:"name=gops desc='start a gops agent'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	sink diag.Sink

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// parseOpts returns the options for parsing the input at path.  Without
// -I the format follows the file suffix.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.JSONFormat
	if f, ok := format.FromPath(path); ok {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.ParseAtomic(cfg.Atomic),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	Eager bool `cli:"name=e desc='check nested containers while parsing'"`

	View *cli.Command
}

type CompactConfig struct {
	*MainConfig

	Compact *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Validate *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=p desc='output an RFC 6902 patch'"`
	Text    bool `cli:"name=t desc='output a line diff of the pretty printed inputs'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Create bool `cli:"name=c desc='create a merge patch from two documents'"`

	Merge *cli.Command
}
