package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/strata-config/strata/ir"
)

func TestTOMLDecodeKeepsDocumentOrder(t *testing.T) {
	doc := `
zebra = 1
yak = "two"

[server]
port = 8080
host = "localhost"

[alpha]
x = true
`
	n, err := (&TOMLCodec{}).Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"zebra", "yak", "server", "alpha"}, n.Keys); diff != "" {
		t.Errorf("root keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"port", "host"}, n.Get("server").Keys); diff != "" {
		t.Errorf("server keys (-want +got):\n%s", diff)
	}
}

func TestTOMLDecodeValues(t *testing.T) {
	doc := `
int = 42
float = 0.5
bool = true
str = "s"
list = [1, 2]
ts = 1979-05-27T07:32:00Z

[[products]]
name = "a"

[[products]]
name = "b"
`
	n, err := (&TOMLCodec{}).Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := ir.FromPairs(
		ir.Pair{Key: "int", Val: ir.FromInt(42)},
		ir.Pair{Key: "float", Val: ir.FromFloat(0.5)},
		ir.Pair{Key: "bool", Val: ir.FromBool(true)},
		ir.Pair{Key: "str", Val: ir.FromString("s")},
		ir.Pair{Key: "list", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		ir.Pair{Key: "ts", Val: ir.FromString("1979-05-27T07:32:00Z")},
		ir.Pair{Key: "products", Val: ir.FromSlice([]*ir.Node{
			ir.FromPairs(ir.Pair{Key: "name", Val: ir.FromString("a")}),
			ir.FromPairs(ir.Pair{Key: "name", Val: ir.FromString("b")}),
		})},
	)
	if !ir.Equal(n, want) {
		t.Errorf("decode mismatch:\n%s", cmp.Diff(want, n))
	}
}

func TestTOMLDecodeEmpty(t *testing.T) {
	n, err := (&TOMLCodec{}).Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.Kind != ir.MappingKind || n.Len() != 0 {
		t.Errorf("Decode(empty) = %+v, want empty mapping", n)
	}
}

func TestTOMLDecodeError(t *testing.T) {
	if _, err := (&TOMLCodec{}).Decode([]byte("= nope")); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode err = %v, want ErrDecode", err)
	}
}

func TestTOMLEncodeFlat(t *testing.T) {
	node := ir.FromPairs(
		ir.Pair{Key: "b", Val: ir.FromInt(1)},
	)
	buf := bytes.NewBuffer(nil)
	if err := (&TOMLCodec{}).Encode(node, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "b = 1\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestTOMLEncodeDropsNullEntries(t *testing.T) {
	node := ir.FromPairs(
		ir.Pair{Key: "gone", Val: ir.Null()},
		ir.Pair{Key: "kept", Val: ir.FromString("v")},
	)
	buf := bytes.NewBuffer(nil)
	if err := (&TOMLCodec{}).Encode(node, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "kept = \"v\"\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestTOMLEncodeErrors(t *testing.T) {
	inList := ir.FromPairs(
		ir.Pair{Key: "l", Val: ir.FromSlice([]*ir.Node{ir.Null()})},
	)
	if err := (&TOMLCodec{}).Encode(inList, bytes.NewBuffer(nil)); !errors.Is(err, ErrEncode) {
		t.Errorf("null list element err = %v, want ErrEncode", err)
	}
	if err := (&TOMLCodec{}).Encode(ir.FromInt(1), bytes.NewBuffer(nil)); !errors.Is(err, ErrEncode) {
		t.Errorf("scalar root err = %v, want ErrEncode", err)
	}
	if err := (&TOMLCodec{}).Encode(ir.Null(), bytes.NewBuffer(nil)); !errors.Is(err, ErrEncode) {
		t.Errorf("null root err = %v, want ErrEncode", err)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	orig := ir.FromPairs(
		ir.Pair{Key: "top", Val: ir.FromInt(1)},
		ir.Pair{Key: "server", Val: ir.FromPairs(
			ir.Pair{Key: "host", Val: ir.FromString("localhost")},
			ir.Pair{Key: "ports", Val: ir.FromSlice([]*ir.Node{ir.FromInt(80), ir.FromInt(443)})},
		)},
	)
	buf := bytes.NewBuffer(nil)
	if err := (&TOMLCodec{}).Encode(orig, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := (&TOMLCodec{}).Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ir.Equal(orig, back) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(orig, back))
	}
}
