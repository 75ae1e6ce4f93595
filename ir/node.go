package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a configuration tree. It is a tagged union: Kind
// selects which of the remaining fields carry the value.
type Node struct {
	Kind Kind

	// Keys and Values hold mapping entries in document order, so
	// Keys[i] names the value at Values[i] and len(Keys) == len(Values).
	// Sequences and sets use Values alone.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.cloneTo(res)
}

func (n *Node) cloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Keys = slices.Clone(n.Keys)
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.cloneTo(&Node{})
		}
	}
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Number = n.Number
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Kind:   StringKind,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Kind:  NumberKind,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Kind:    NumberKind,
		Float64: &f,
	}
}

// FromNumber builds a number node from its textual form. Values that fit
// an int64 land in Int64, other finite decimals in Float64, and anything
// else (big integers, exotic notations) is kept verbatim in Number.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{
		Kind:   NumberKind,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Kind: BoolKind,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

type Pair struct {
	Key string
	Val *Node
}

func FromPairs(pairs ...Pair) *Node {
	res := &Node{Kind: MappingKind}
	for _, p := range pairs {
		res.Put(p.Key, p.Val)
	}
	return res
}

// FromStringMap builds a mapping with sorted keys and string values. Env
// style sources decode through it.
func FromStringMap(m map[string]string) *Node {
	res := &Node{Kind: MappingKind}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Put(key, FromString(m[key]))
	}
	return res
}

func FromSlice(vals []*Node) *Node {
	res := &Node{Kind: SequenceKind}
	res.Values = make([]*Node, len(vals))
	copy(res.Values, vals)
	return res
}

// FromSet builds a set node, discarding duplicates. The first occurrence
// of each distinct value keeps its position.
func FromSet(vals []*Node) *Node {
	res := &Node{Kind: SetKind}
	seen := make(map[uint64][]*Node, len(vals))
	for _, v := range vals {
		h := v.Hash()
		dup := false
		for _, u := range seen[h] {
			if Equal(u, v) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], v)
		res.Values = append(res.Values, v)
	}
	return res
}

// Get returns the value stored under key, or nil if the key is absent.
// It panics if n is not a mapping.
func (n *Node) Get(key string) *Node {
	if n.Kind != MappingKind {
		panic("ir: Get called on non-mapping node")
	}
	if i, ok := n.Index(key); ok {
		return n.Values[i]
	}
	return nil
}

// Put stores val under key. An existing key keeps its position, a new key
// is appended. It panics if n is not a mapping.
func (n *Node) Put(key string, val *Node) {
	if n.Kind != MappingKind {
		panic("ir: Put called on non-mapping node")
	}
	if i, ok := n.Index(key); ok {
		n.Values[i] = val
		return
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, val)
}

// Index returns the entry position of key within a mapping.
func (n *Node) Index(key string) (int, bool) {
	for i := range n.Keys {
		if n.Keys[i] == key {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of entries of a mapping, sequence or set, and 0
// for leaves.
func (n *Node) Len() int {
	return len(n.Values)
}
