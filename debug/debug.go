// Package debug provides env-gated diagnostics for merge and file
// operations. Set STRATA_DEBUG_MERGE or STRATA_DEBUG_FILE to a truthy
// value to enable the matching switch.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge bool
	File  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("STRATA_DEBUG_MERGE")
	d.File = boolEnv("STRATA_DEBUG_FILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func File() bool {
	return d.File
}
