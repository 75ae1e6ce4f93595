package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/strata-config/strata/ir"
)

// YAMLCodec reads and writes YAML documents, preserving mapping entry
// order on both sides. Empty and comment-only documents decode to null,
// as yaml itself defines.
type YAMLCodec struct{}

func (c *YAMLCodec) Decode(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Null(), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Null(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	n, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return n, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		n := &ir.Node{Kind: ir.MappingKind}
		for _, item := range v {
			key, err := yamlKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			n.Put(key, val)
		}
		return n, nil
	case []any:
		vals := make([]*ir.Node, len(v))
		for i, elt := range v {
			n, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	default:
		return ir.FromAny(v)
	}
}

// yamlKey renders a mapping key as a string. YAML permits non-string
// keys; they stringify here since node keys are strings.
func yamlKey(v any) (string, error) {
	switch k := v.(type) {
	case string:
		return k, nil
	case nil:
		return "", fmt.Errorf("null mapping key unsupported")
	default:
		return fmt.Sprint(k), nil
	}
}

func (c *YAMLCodec) Encode(n *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(n))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	_, err = w.Write(d)
	return err
}

func toYAML(n *ir.Node) any {
	switch n.Kind {
	case ir.MappingKind:
		res := make(yaml.MapSlice, len(n.Keys))
		for i, key := range n.Keys {
			res[i] = yaml.MapItem{Key: key, Value: toYAML(n.Values[i])}
		}
		return res
	case ir.SequenceKind:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.SetKind:
		vals := sortedSet(n)
		res := make([]any, len(vals))
		for i, v := range vals {
			res[i] = toYAML(v)
		}
		return res
	default:
		return ir.ToAny(n)
	}
}
