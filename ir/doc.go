// Package ir provides the intermediate representation (IR) for
// configuration trees.
//
// # Overview
//
// The IR package defines the core data structure for representing
// configuration documents as a tree of nodes. Every document, whether
// decoded from JSON, YAML, TOML or env text or created programmatically,
// is represented as an ir.Node tree, so merging and encoding never deal
// with format specific value types.
//
// The IR is a simple recursive structure with no position information
// from input documents, making it purely semantic.
//
// # Node Structure
//
// A Node represents a single value. Nodes can be:
//
//   - Atomic kinds: null, boolean, number, string
//   - Composite kinds: mapping (ordered key-value pairs), sequence
//     (ordered list), set (unordered collection of distinct values)
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node kind.
//
// # Node Kinds
//
// The Kind field indicates the node's kind:
//
//   - NullKind: null value
//   - BoolKind: boolean (true/false)
//   - NumberKind: numeric value (int64 or float64)
//   - StringKind: string value
//   - SequenceKind: ordered list of nodes
//   - SetKind: unordered collection of distinct nodes
//   - MappingKind: ordered key-value pairs
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	seq := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromPairs(
//	    ir.Pair{Key: "key", Val: ir.FromString("value")},
//	)
//
// # Structure Constraints
//
// ## Mappings
//
// For MappingKind nodes, Keys[i] names the value at Values[i], so there
// are always as many keys as values. Keys are distinct. Entry order is
// significant and preserved: decoders keep document order, and merging
// keeps base order while appending unseen overlay keys.
//
// ## Sequences and Sets
//
// Both store their elements in Values. Sequence order is significant.
// Set order is not: sets compare, hash and encode as if sorted, and the
// FromSet constructor drops duplicate values. Mutating set Values
// directly can break the distinctness invariant; use FromSet.
//
// ## Numbers
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither Int64 nor Float64 can
//     represent it
//
// FromNumber picks the representation from numeric text.
//
// # Comparison and Hashing
//
// Compare defines a total order over nodes, first by kind, then by
// value. Equal is Compare == 0. Hash returns a 64-bit hash consistent
// with Equal within a process, which the set operations use for
// deduplication.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/strata-config/strata - Merges node trees
//   - github.com/strata-config/strata/codec - Decodes and encodes nodes
package ir
