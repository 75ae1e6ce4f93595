package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// FromAny converts a decoded Go value into a node. Maps convert with
// sorted keys; codecs that know the document order build mappings
// themselves. Times and other Stringer values become strings.
func FromAny(v any) (*Node, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return v.Clone(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return FromNumber(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return FromInt(int64(v)), nil
	case uint16:
		return FromInt(int64(v)), nil
	case uint32:
		return FromInt(int64(v)), nil
	case uint64:
		return FromNumber(strconv.FormatUint(v, 10)), nil
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case json.Number:
		return FromNumber(v.String()), nil
	case time.Time:
		return FromString(v.Format(time.RFC3339Nano)), nil
	case []any:
		vals := make([]*Node, len(v))
		for i, elt := range v {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case []map[string]any:
		vals := make([]*Node, len(v))
		for i, elt := range v {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := &Node{Kind: MappingKind}
		for _, key := range slices.Sorted(maps.Keys(v)) {
			n, err := FromAny(v[key])
			if err != nil {
				return nil, err
			}
			res.Put(key, n)
		}
		return res, nil
	case fmt.Stringer:
		return FromString(v.String()), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a node", v)
	}
}

// ToAny converts a node to plain Go values. Mappings become
// map[string]any so entry order is lost; order preserving encoders walk
// the node themselves. Sets come back as sorted slices.
func ToAny(n *Node) any {
	switch n.Kind {
	case MappingKind:
		res := make(map[string]any, len(n.Keys))
		for i, key := range n.Keys {
			res[key] = ToAny(n.Values[i])
		}
		return res
	case SequenceKind:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToAny(elt)
		}
		return res
	case SetKind:
		vals := sortedValues(n)
		res := make([]any, len(vals))
		for i, elt := range vals {
			res[i] = ToAny(elt)
		}
		return res
	case StringKind:
		return n.String
	case NumberKind:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		// Number fallback: best effort as float, else the raw text.
		if f, err := strconv.ParseFloat(n.Number, 64); err == nil {
			return f
		}
		return n.Number
	case BoolKind:
		return n.Bool
	case NullKind:
		return nil
	default:
		panic("impossible production")
	}
}
