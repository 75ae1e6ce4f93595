package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/strata-config/strata/codec"
	"github.com/strata-config/strata/format"
	"github.com/strata-config/strata/ir"
)

// Tree wraps a node so it renders as JSON in log output.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := codec.For(format.JSONFormat).Encode(t.Node, buf); err != nil {
		return fmt.Sprintf("[raw node] %v", t.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := codec.For(format.JSONFormat).Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
