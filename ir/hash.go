package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal nodes hash equal across calls within a
// process. Hashes are not stable across process restarts.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node. Equal nodes hash equal, which
// makes Hash usable for set deduplication together with Equal.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Kind))

	switch n.Kind {
	case NullKind:
	case BoolKind:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberKind:
		if n.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringKind:
		h.WriteString(n.String)
	case SequenceKind:
		var b [8]byte
		for _, v := range n.Values {
			// Combine child hashes order-dependently.
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case SetKind:
		// Element order must not influence the hash, so child hashes
		// combine by XOR before entering the hasher.
		var acc uint64
		for _, v := range n.Values {
			acc ^= v.Hash()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], acc)
		h.Write(b[:])
	case MappingKind:
		var b [8]byte
		for i, key := range n.Keys {
			h.WriteString(key)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
