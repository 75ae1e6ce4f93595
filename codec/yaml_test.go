package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/strata-config/strata/ir"
)

func TestYAMLDecodeKeepsOrder(t *testing.T) {
	doc := `
zeta: 1
alpha:
  y: true
  x: null
mid:
  - 1
  - two
`
	n, err := (&YAMLCodec{}).Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, n.Keys); diff != "" {
		t.Errorf("root keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y", "x"}, n.Get("alpha").Keys); diff != "" {
		t.Errorf("nested keys (-want +got):\n%s", diff)
	}
	want := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")})
	if !ir.Equal(n.Get("mid"), want) {
		t.Errorf("mid = %+v, want %+v", n.Get("mid"), want)
	}
}

func TestYAMLDecodeEmpty(t *testing.T) {
	for _, doc := range []string{"", "   ", "\n\n"} {
		n, err := (&YAMLCodec{}).Decode([]byte(doc))
		if err != nil {
			t.Fatalf("Decode(%q): %v", doc, err)
		}
		if n.Kind != ir.NullKind {
			t.Errorf("Decode(%q) kind = %s, want Null", doc, n.Kind)
		}
	}
}

func TestYAMLDecodeError(t *testing.T) {
	doc := "a: [unclosed\nb: }{"
	if _, err := (&YAMLCodec{}).Decode([]byte(doc)); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode err = %v, want ErrDecode", err)
	}
}

func TestYAMLScalarTypes(t *testing.T) {
	doc := `
int: 3
float: 0.5
bool: false
str: "3"
nil: null
`
	n, err := (&YAMLCodec{}).Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := ir.FromPairs(
		ir.Pair{Key: "int", Val: ir.FromInt(3)},
		ir.Pair{Key: "float", Val: ir.FromFloat(0.5)},
		ir.Pair{Key: "bool", Val: ir.FromBool(false)},
		ir.Pair{Key: "str", Val: ir.FromString("3")},
		ir.Pair{Key: "nil", Val: ir.Null()},
	)
	if !ir.Equal(n, want) {
		t.Errorf("decode mismatch:\n%s", cmp.Diff(want, n))
	}
}

func TestYAMLEncodeKeepsOrder(t *testing.T) {
	node := ir.FromPairs(
		ir.Pair{Key: "zeta", Val: ir.FromInt(1)},
		ir.Pair{Key: "alpha", Val: ir.FromSlice([]*ir.Node{ir.FromString("x")})},
	)
	buf := bytes.NewBuffer(nil)
	if err := (&YAMLCodec{}).Encode(node, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `zeta: 1
alpha:
- x
`
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestYAMLEncodeSetSorted(t *testing.T) {
	set := ir.FromSet([]*ir.Node{
		ir.FromInt(3),
		ir.FromInt(1),
		ir.FromInt(2),
	})
	buf := bytes.NewBuffer(nil)
	if err := (&YAMLCodec{}).Encode(set, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `- 1
- 2
- 3
`
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := ir.FromPairs(
		ir.Pair{Key: "b", Val: ir.FromPairs(
			ir.Pair{Key: "deep", Val: ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				ir.FromFloat(2.5),
				ir.Null(),
				ir.FromBool(true),
				ir.FromString("s"),
			})},
		)},
		ir.Pair{Key: "a", Val: ir.FromString("1")},
	)
	buf := bytes.NewBuffer(nil)
	if err := (&YAMLCodec{}).Encode(orig, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := (&YAMLCodec{}).Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ir.Equal(orig, back) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(orig, back))
	}
}
