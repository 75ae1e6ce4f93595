// Package strata merges layered configuration trees.
//
// Configuration documents decode into ir.Node trees through the codec
// and file packages, merge here under a Policy, and encode back out in
// any supported format:
//
//	base, _ := file.Load("defaults.yaml")
//	over, _ := file.Load("production.json")
//	merged := strata.Merge(base, over, strata.Append)
//	_ = file.Dump(merged, "effective.yaml", nil)
//
// Merge follows layering conventions common to configuration systems:
// mappings merge per key with base entry order preserved, sequences and
// sets combine per the chosen Policy, and for everything else the
// overlay value wins.
package strata
