package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/strata-config/strata/ir"
)

// JSONCodec reads and writes JSON documents. The zero value indents
// output with two spaces. Compact suppresses all whitespace and Colors
// decorates output for terminals.
//
// Decoding goes through the token stream rather than Unmarshal so that
// object key order survives and integers stay integers.
type JSONCodec struct {
	Compact bool
	Colors  *Colors
}

func (c *JSONCodec) Decode(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("%w: empty JSON document", ErrDecode)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	n, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON document", ErrDecode)
	}
	return n, nil
}

func decodeJSONValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &ir.Node{Kind: ir.MappingKind}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Put(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &ir.Node{Kind: ir.SequenceKind}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Values = append(n.Values, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return ir.FromNumber(t.String()), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

type jsonEncState struct {
	depth   int
	indent  int
	compact bool
	colors  *Colors
}

func (es *jsonEncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(k, a, s)
}

func (c *JSONCodec) Encode(n *ir.Node, w io.Writer) error {
	es := &jsonEncState{
		indent:  2,
		compact: c.Compact,
		colors:  c.Colors,
	}
	if err := encodeJSON(n, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeJSON(n *ir.Node, w io.Writer, es *jsonEncState) error {
	switch n.Kind {
	case ir.NullKind:
		return writeString(w, es.color(ir.NullKind, ValueColor, "null"))
	case ir.BoolKind:
		return writeString(w, es.color(ir.BoolKind, ValueColor, strconv.FormatBool(n.Bool)))
	case ir.NumberKind:
		s, err := jsonNumber(n)
		if err != nil {
			return err
		}
		return writeString(w, es.color(ir.NumberKind, ValueColor, s))
	case ir.StringKind:
		d, err := json.Marshal(n.String)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return writeString(w, es.color(ir.StringKind, ValueColor, string(d)))
	case ir.SequenceKind:
		return encodeJSONArray(n.Values, w, es)
	case ir.SetKind:
		return encodeJSONArray(sortedSet(n), w, es)
	case ir.MappingKind:
		return encodeJSONObject(n, w, es)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrEncode, n.Kind)
	}
}

// jsonNumber renders a number node as a JSON literal. The Number
// fallback is emitted verbatim, which keeps big integers intact.
func jsonNumber(n *ir.Node) (string, error) {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10), nil
	}
	if n.Float64 != nil {
		d, err := json.Marshal(*n.Float64)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return string(d), nil
	}
	return n.Number, nil
}

func encodeJSONArray(vals []*ir.Node, w io.Writer, es *jsonEncState) error {
	if len(vals) == 0 {
		return writeString(w, es.color(ir.SequenceKind, SepColor, "[]"))
	}
	if err := writeString(w, es.color(ir.SequenceKind, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range vals {
		if i > 0 {
			if err := writeString(w, es.color(ir.SequenceKind, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.SequenceKind, SepColor, "]"))
}

func encodeJSONObject(n *ir.Node, w io.Writer, es *jsonEncState) error {
	if len(n.Keys) == 0 {
		return writeString(w, es.color(ir.MappingKind, SepColor, "{}"))
	}
	if err := writeString(w, es.color(ir.MappingKind, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, key := range n.Keys {
		if i > 0 {
			if err := writeString(w, es.color(ir.MappingKind, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		kd, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		if err := writeString(w, es.color(ir.MappingKind, FieldColor, string(kd))); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.MappingKind, SepColor, ":")); err != nil {
			return err
		}
		if !es.compact {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encodeJSON(n.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.MappingKind, SepColor, "}"))
}

func writeNL(w io.Writer, es *jsonEncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}
