package codec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/strata-config/strata/ir"
)

// EnvCodec reads and writes dotenv documents. Decoding is tolerant:
// lines that carry no assignment are skipped, matching how env files
// accrete junk in practice. Documents decode to flat string mappings
// with sorted keys.
type EnvCodec struct{}

func (c *EnvCodec) Decode(d []byte) (*ir.Node, error) {
	m, err := godotenv.UnmarshalBytes(assignmentLines(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ir.FromStringMap(m), nil
}

// assignmentLines drops lines godotenv would reject: neither blank, nor
// comment, nor KEY=VALUE.
func assignmentLines(d []byte) []byte {
	lines := bytes.Split(d, []byte("\n"))
	keep := make([][]byte, 0, len(lines))
	for _, ln := range lines {
		t := bytes.TrimSpace(ln)
		if len(t) == 0 || t[0] == '#' || bytes.ContainsRune(t, '=') {
			keep = append(keep, ln)
		}
	}
	return bytes.Join(keep, []byte("\n"))
}

func (c *EnvCodec) Encode(n *ir.Node, w io.Writer) error {
	if n.Kind != ir.MappingKind {
		return fmt.Errorf("%w: env document root must be a mapping, have %s", ErrEncode, n.Kind)
	}
	m := make(map[string]string, len(n.Keys))
	for i, key := range n.Keys {
		s, err := envString(n.Values[i])
		if err != nil {
			return err
		}
		m[key] = s
	}
	d, err := godotenv.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := writeString(w, d); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// envString renders a value for the right-hand side of an assignment.
// Containers flatten to compact JSON.
func envString(n *ir.Node) (string, error) {
	switch n.Kind {
	case ir.StringKind:
		return n.String, nil
	case ir.BoolKind:
		return strconv.FormatBool(n.Bool), nil
	case ir.NumberKind:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10), nil
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64), nil
		}
		return n.Number, nil
	case ir.NullKind:
		return "", nil
	default:
		buf := bytes.NewBuffer(nil)
		jc := &JSONCodec{Compact: true}
		if err := jc.Encode(n, buf); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
}
