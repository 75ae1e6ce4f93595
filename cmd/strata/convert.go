package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	path := "-"
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return fmt.Errorf("%w: convert takes at most one file", cli.ErrUsage)
	}
	n, err := cfg.load(cc, path)
	if err != nil {
		return err
	}
	f, err := cfg.outFmt([]string{path})
	if err != nil {
		return err
	}
	return cfg.encoder(cc.Out, f).Encode(n, cc.Out)
}
