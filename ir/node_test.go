package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPutKeepsPosition(t *testing.T) {
	n := FromPairs(
		Pair{Key: "a", Val: FromInt(1)},
		Pair{Key: "b", Val: FromInt(2)},
		Pair{Key: "c", Val: FromInt(3)},
	)
	n.Put("b", FromString("two"))
	n.Put("d", FromInt(4))

	wantKeys := []string{"a", "b", "c", "d"}
	if diff := cmp.Diff(wantKeys, n.Keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := n.Get("b"); !Equal(got, FromString("two")) {
		t.Errorf("Get(b) = %+v, want string two", got)
	}
	if got := n.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromPairs(
		Pair{Key: "list", Val: FromSlice([]*Node{FromInt(1)})},
		Pair{Key: "num", Val: FromFloat(1.5)},
	)
	cl := orig.Clone()
	if !Equal(orig, cl) {
		t.Fatalf("clone differs from original")
	}

	cl.Put("num", FromInt(9))
	cl.Get("list").Values[0] = FromString("mutated")
	*cl.Get("num").Int64 = 10

	if !Equal(orig.Get("num"), FromFloat(1.5)) {
		t.Errorf("original num changed by clone mutation")
	}
	if !Equal(orig.Get("list").Values[0], FromInt(1)) {
		t.Errorf("original list changed by clone mutation")
	}
}

func TestFromSetDedups(t *testing.T) {
	s := FromSet([]*Node{
		FromInt(1),
		FromString("a"),
		FromInt(1),
		FromPairs(Pair{Key: "k", Val: FromBool(true)}),
		FromString("a"),
		FromPairs(Pair{Key: "k", Val: FromBool(true)}),
	})
	want := FromSet([]*Node{
		FromInt(1),
		FromString("a"),
		FromPairs(Pair{Key: "k", Val: FromBool(true)}),
	})
	if !Equal(s, want) {
		t.Errorf("FromSet kept duplicates: %+v", s.Values)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"42", FromInt(42)},
		{"-3", FromInt(-3)},
		{"3.25", FromFloat(3.25)},
		{"1e3", FromFloat(1000)},
		{"184467440737095516150", &Node{Kind: NumberKind, Number: "184467440737095516150"}},
	}
	for _, tt := range tests {
		got := FromNumber(tt.in)
		if !Equal(got, tt.want) {
			t.Errorf("FromNumber(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFromStringMapSorted(t *testing.T) {
	n := FromStringMap(map[string]string{
		"ZETA":  "z",
		"ALPHA": "a",
		"MID":   "m",
	})
	wantKeys := []string{"ALPHA", "MID", "ZETA"}
	if diff := cmp.Diff(wantKeys, n.Keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}
