// Package codec decodes and encodes configuration trees in the
// supported formats. Decoders preserve mapping entry order and integer
// fidelity where the format allows; encoders render sets as sorted
// sequences so output is deterministic.
package codec

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/strata-config/strata/format"
	"github.com/strata-config/strata/ir"
)

var (
	// ErrDecode reports malformed input documents.
	ErrDecode = errors.New("decode error")
	// ErrEncode reports values a format cannot represent.
	ErrEncode = errors.New("encode error")
)

// Codec translates between serialized documents and node trees.
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Decode parses one whole document.
	Decode(d []byte) (*ir.Node, error)
	// Encode writes n as a complete document, trailing newline included.
	Encode(n *ir.Node, w io.Writer) error
}

// For returns the codec for f with default options. It panics on
// formats outside format.AllFormats; parse formats with
// format.ParseFormat or format.FromPath first.
func For(f format.Format) Codec {
	switch f {
	case format.JSONFormat:
		return &JSONCodec{}
	case format.YAMLFormat:
		return &YAMLCodec{}
	case format.TOMLFormat:
		return &TOMLCodec{}
	case format.EnvFormat:
		return &EnvCodec{}
	default:
		panic(fmt.Sprintf("codec: no codec for format %d", f))
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// sortedSet returns a set's values in Compare order for encoding.
func sortedSet(n *ir.Node) []*ir.Node {
	vals := slices.Clone(n.Values)
	slices.SortFunc(vals, ir.Compare)
	return vals
}
