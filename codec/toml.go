package codec

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/strata-config/strata/ir"
)

// TOMLCodec reads and writes TOML documents. Decoding restores document
// key order from toml metadata. TOML has no null: encoding drops null
// mapping entries and rejects null sequence elements and roots.
type TOMLCodec struct{}

func (c *TOMLCodec) Decode(d []byte) (*ir.Node, error) {
	var m map[string]any
	md, err := toml.Decode(string(d), &m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	n, err := fromTOML(m, nil, keyRanks(md.Keys()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return n, nil
}

// keyRanks maps key paths to their first appearance in the document.
func keyRanks(keys []toml.Key) map[string]int {
	rank := make(map[string]int, len(keys))
	for i, k := range keys {
		p := strings.Join(k, "\x00")
		if _, ok := rank[p]; !ok {
			rank[p] = i
		}
	}
	return rank
}

func fromTOML(v any, path []string, rank map[string]int) (*ir.Node, error) {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		prefix := ""
		if len(path) > 0 {
			prefix = strings.Join(path, "\x00") + "\x00"
		}
		// Document order where metadata knows the key, name order
		// otherwise (inline table members).
		slices.SortFunc(keys, func(a, b string) int {
			ra, aok := rank[prefix+a]
			rb, bok := rank[prefix+b]
			switch {
			case aok && bok:
				return cmp.Compare(ra, rb)
			case aok:
				return -1
			case bok:
				return 1
			default:
				return strings.Compare(a, b)
			}
		})
		n := &ir.Node{Kind: ir.MappingKind}
		for _, k := range keys {
			val, err := fromTOML(v[k], append(path, k), rank)
			if err != nil {
				return nil, err
			}
			n.Put(k, val)
		}
		return n, nil
	case []map[string]any:
		vals := make([]*ir.Node, len(v))
		for i, elt := range v {
			n, err := fromTOML(elt, path, rank)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case []any:
		vals := make([]*ir.Node, len(v))
		for i, elt := range v {
			n, err := fromTOML(elt, path, rank)
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

func (c *TOMLCodec) Encode(n *ir.Node, w io.Writer) error {
	v, err := toTOML(n)
	if err != nil {
		return err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: toml document root must be a mapping, have %s", ErrEncode, n.Kind)
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func toTOML(n *ir.Node) (any, error) {
	switch n.Kind {
	case ir.MappingKind:
		res := make(map[string]any, len(n.Keys))
		for i, key := range n.Keys {
			if n.Values[i].Kind == ir.NullKind {
				// No null in TOML; omit the entry.
				continue
			}
			v, err := toTOML(n.Values[i])
			if err != nil {
				return nil, err
			}
			res[key] = v
		}
		return res, nil
	case ir.SequenceKind:
		return tomlArray(n.Values)
	case ir.SetKind:
		return tomlArray(sortedSet(n))
	case ir.NullKind:
		return nil, fmt.Errorf("%w: toml cannot represent null", ErrEncode)
	default:
		return ir.ToAny(n), nil
	}
}

func tomlArray(vals []*ir.Node) (any, error) {
	res := make([]any, len(vals))
	for i, v := range vals {
		vv, err := toTOML(v)
		if err != nil {
			return nil, err
		}
		res[i] = vv
	}
	return res, nil
}
