// Package file loads and dumps configuration trees on disk, resolving
// formats from file extensions via package format.
package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/strata-config/strata/codec"
	"github.com/strata-config/strata/debug"
	"github.com/strata-config/strata/format"
	"github.com/strata-config/strata/ir"
)

// ErrMissingFormat reports a dump aimed at stdout with no format to
// sniff and none supplied.
var ErrMissingFormat = errors.New("missing format")

// Load reads and decodes the file at path. The format comes from the
// extension. Open errors pass through untouched, so os.IsNotExist
// works on them.
func Load(path string) (*ir.Node, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, f)
}

// LoadAs reads path and decodes it as f, ignoring the extension.
func LoadAs(path string, f format.Format) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if debug.File() {
		debug.Logf("load %s as %s (%d bytes)\n", path, f, len(d))
	}
	n, err := codec.For(f).Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// LoadFrom decodes one document from r as f. It serves stdin input,
// where there is no path to sniff.
func LoadFrom(r io.Reader, f format.Format) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return codec.For(f).Decode(d)
}

// Dump writes n to path, picking the codec from the extension. A
// non-nil f overrides the extension. An empty path addresses stdout
// instead, and then f is required: there is nothing to sniff, so a nil
// f reports ErrMissingFormat.
func Dump(n *ir.Node, path string, f *format.Format) error {
	ff, err := OutFormat(path, f)
	if err != nil {
		return err
	}
	if path == "" {
		return DumpTo(n, os.Stdout, ff)
	}
	return DumpAs(n, path, ff)
}

// DumpAs encodes n as f into the file at path. The file is written
// whole or not at all: encoding happens before the file is touched.
func DumpAs(n *ir.Node, path string, f format.Format) error {
	buf := bytes.NewBuffer(nil)
	if err := codec.For(f).Encode(n, buf); err != nil {
		return err
	}
	if debug.File() {
		debug.Logf("dump %s as %s (%d bytes)\n", path, f, buf.Len())
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// DumpTo encodes n as f to w.
func DumpTo(n *ir.Node, w io.Writer, f format.Format) error {
	return codec.For(f).Encode(n, w)
}

// OutFormat resolves the format for writing to path. An explicit f
// wins; otherwise the extension decides. An empty path means stdout,
// which has no extension, so f is required there.
func OutFormat(path string, f *format.Format) (format.Format, error) {
	if f != nil {
		return *f, nil
	}
	if path == "" {
		return 0, ErrMissingFormat
	}
	return format.FromPath(path)
}
