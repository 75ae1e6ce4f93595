package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/strata-config/strata"
	"github.com/strata-config/strata/file"
	"github.com/strata-config/strata/ir"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge needs at least one file", cli.ErrUsage)
	}
	if cfg.Watch {
		return watchMerge(cfg, cc, args)
	}
	return mergeOnce(cfg, cc, args)
}

func mergeOnce(cfg *MergeConfig, cc *cli.Context, paths []string) error {
	res, err := loadMerged(cfg, cc, paths)
	if err != nil {
		return err
	}
	f, err := cfg.outFmt(paths)
	if err != nil {
		return err
	}
	if cfg.Watch && cfg.Out != "" && cfg.Out != "-" {
		// rewrite the output file whole on every round
		return file.DumpAs(res, cfg.Out, f)
	}
	return cfg.encoder(cc.Out, f).Encode(res, cc.Out)
}

func loadMerged(cfg *MergeConfig, cc *cli.Context, paths []string) (*ir.Node, error) {
	var res *ir.Node
	for _, path := range paths {
		n, err := cfg.load(cc, path)
		if err != nil {
			return nil, err
		}
		res = strata.Merge(res, n, cfg.Policy)
	}
	return res, nil
}

// editors tend to replace files rather than rewrite them in place, so
// watch the parent directories and debounce bursts of events.
const watchDebounce = 500 * time.Millisecond

func watchMerge(cfg *MergeConfig, cc *cli.Context, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	names := map[string]bool{}
	dirs := map[string]bool{}
	for _, path := range paths {
		if path == "-" {
			return fmt.Errorf("%w: cannot watch stdin", cli.ErrUsage)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		names[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("could not watch %q: %w", dir, err)
		}
	}
	round := func() {
		if err := mergeOnce(cfg, cc, paths); err != nil {
			fmt.Fprintf(os.Stderr, "strata: merge: %s\n", err)
		}
	}
	round()
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !names[abs] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			round()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "strata: watch: %s\n", err)
		}
	}
}
