package main

import (
	"fmt"
	"io"

	"github.com/strata-config/strata/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	for i, path := range args {
		n, err := cfg.load(cc, path)
		if err != nil {
			return err
		}
		if err := cfg.encoder(cc.Out, f).Encode(n, cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
