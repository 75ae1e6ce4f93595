package main

import (
	"fmt"
	"io"
	"os"

	"github.com/strata-config/strata"
	"github.com/strata-config/strata/codec"
	"github.com/strata-config/strata/file"
	"github.com/strata-config/strata/format"
	"github.com/strata-config/strata/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode json with color'"`
	Compact bool `cli:"name=compact desc='encode json in compact form'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// load reads one document. "-" means the command input, which has no
// extension to sniff and so requires -I.
func (cfg *MainConfig) load(cc *cli.Context, path string) (*ir.Node, error) {
	if path == "-" {
		if cfg.InFormat == nil {
			return nil, fmt.Errorf("%w: reading stdin needs -I", cli.ErrUsage)
		}
		return file.LoadFrom(cc.In, *cfg.InFormat)
	}
	if cfg.InFormat != nil {
		return file.LoadAs(path, *cfg.InFormat)
	}
	return file.Load(path)
}

// outFmt resolves the output format: -O wins, then the -o extension,
// then the extension of the first sniffable input, then -I.
func (cfg *MainConfig) outFmt(inputs []string) (format.Format, error) {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat, nil
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return format.FromPath(cfg.Out)
	}
	for _, in := range inputs {
		if in == "-" {
			continue
		}
		if f, err := format.FromPath(in); err == nil {
			return f, nil
		}
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat, nil
	}
	return 0, fmt.Errorf("%w: no output format, use -O", cli.ErrUsage)
}

// encoder picks the codec for f. JSON honors -compact and -color;
// without an explicit -color, color turns on when w is a terminal.
func (cfg *MainConfig) encoder(w io.Writer, f format.Format) codec.Codec {
	if f != format.JSONFormat {
		return codec.For(f)
	}
	jc := &codec.JSONCodec{Compact: cfg.Compact}
	if cfg.Color {
		jc.Colors = codec.NewColors()
		return jc
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
		return jc
	}
	of, ok := w.(*os.File)
	if !ok {
		return jc
	}
	if isatty.IsTerminal(of.Fd()) {
		jc.Colors = codec.NewColors()
	}
	return jc
}

type MergeConfig struct {
	*MainConfig

	Watch bool `cli:"name=w aliases=watch desc='watch inputs and re-merge on change'"`

	Policy strata.Policy
	Merge  *cli.Command
}

func (cfg *MergeConfig) policyOpt(_ *cli.Context, a string) (any, error) {
	p, err := strata.ParsePolicy(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Policy = p
	return p, nil
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
