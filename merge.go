package strata

import (
	"github.com/strata-config/strata/debug"
	"github.com/strata-config/strata/ir"
)

// Merge combines overlay into base and returns the result.
//
// Merge is destructive on base: when both sides are mappings, base is
// mutated in place and the returned node is base itself. Overlay is
// never mutated, and no part of the result aliases overlay; overlay
// material that wins is deep-cloned in.
//
// Two mappings merge per key, recursively. Two sequences and two sets
// combine according to pol. Every other pairing, scalars included, is
// decided by overlay.
//
// Merging is ordered, not associative: layering several documents must
// fold left to right, lowest precedence first.
func Merge(base, overlay *ir.Node, pol Policy) *ir.Node {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay.Clone()
	}
	if debug.Merge() {
		debug.Logf("merge %s into %s policy %s\n", overlay.Kind, base.Kind, pol)
	}
	switch {
	case base.Kind == ir.MappingKind && overlay.Kind == ir.MappingKind:
		return mergeMappings(base, overlay, pol)
	case base.Kind == ir.SequenceKind && overlay.Kind == ir.SequenceKind:
		return mergeSequences(base, overlay, pol)
	case base.Kind == ir.SetKind && overlay.Kind == ir.SetKind:
		return mergeSets(base, overlay, pol)
	default:
		return overlay.Clone()
	}
}

// Merged is the non-mutating variant of Merge. Both arguments are left
// untouched and the result shares no nodes with either.
func Merged(base, overlay *ir.Node, pol Policy) *ir.Node {
	if base == nil {
		return Merge(nil, overlay, pol)
	}
	return Merge(base.Clone(), overlay, pol)
}

// mergeMappings folds overlay entries into base. Keys already in base
// keep their position and merge recursively; unseen keys append in
// overlay order.
func mergeMappings(base, overlay *ir.Node, pol Policy) *ir.Node {
	for i, key := range overlay.Keys {
		ov := overlay.Values[i]
		if j, ok := base.Index(key); ok {
			base.Values[j] = Merge(base.Values[j], ov, pol)
			continue
		}
		base.Put(key, ov.Clone())
	}
	return base
}

func mergeSequences(base, overlay *ir.Node, pol Policy) *ir.Node {
	ovals := cloneValues(overlay)
	switch pol {
	case Append:
		base.Values = append(base.Values, ovals...)
	case Prepend:
		base.Values = append(ovals, base.Values...)
	default:
		base.Values = ovals
	}
	return base
}

func mergeSets(base, overlay *ir.Node, pol Policy) *ir.Node {
	if pol == Replace {
		base.Values = ir.FromSet(cloneValues(overlay)).Values
		return base
	}
	// Append and Prepend converge on the union: base elements first,
	// unseen overlay elements after.
	vals := make([]*ir.Node, 0, len(base.Values)+len(overlay.Values))
	vals = append(vals, base.Values...)
	vals = append(vals, cloneValues(overlay)...)
	base.Values = ir.FromSet(vals).Values
	return base
}

func cloneValues(n *ir.Node) []*ir.Node {
	vals := make([]*ir.Node, len(n.Values))
	for i, v := range n.Values {
		vals[i] = v.Clone()
	}
	return vals
}
