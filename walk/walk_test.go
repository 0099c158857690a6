package walk

import (
	"testing"

	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
)

// keepAll is a leaf that represents every scalar directly.
func keepAll(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Nil:
		return ir.Null(), true
	case kind.Bool:
		return ir.FromBool(v.(bool)), true
	case kind.Int:
		return ir.FromInt(int64(v.(int))), true
	case kind.String:
		return ir.FromString(v.(string)), true
	default:
		return ir.FromString(k.String()), true
	}
}

// dropStrings omits every string leaf.
func dropStrings(v any, k kind.Kind) (*ir.Node, bool) {
	if k == kind.String {
		return nil, false
	}
	return keepAll(v, k)
}

func TestWalkStructDeclOrder(t *testing.T) {
	type rec struct {
		B int
		A string
		x int // unexported, skipped
	}
	w := New(LeafFunc(keepAll))
	node, ok := w.Walk(rec{B: 1, A: "a", x: 9})
	if !ok {
		t.Fatal("record must survive")
	}
	if len(node.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(node.Fields))
	}
	if node.Fields[0].String != "B" || node.Fields[1].String != "A" {
		t.Errorf("fields out of declaration order: %s, %s",
			node.Fields[0].String, node.Fields[1].String)
	}
}

func TestWalkEmbeddedFlattening(t *testing.T) {
	type base struct {
		X int
		N int
	}
	type outer struct {
		base
		N int
		Y int
	}
	w := New(LeafFunc(keepAll))
	node, _ := w.Walk(outer{base: base{X: 1, N: 2}, N: 3, Y: 4})
	if len(node.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(node.Fields))
	}
	// The outer N shadows the embedded one, as encoding/json resolves it.
	if n := ir.Get(node, "N"); n == nil || *n.Int64 != 3 {
		t.Errorf("outer N must shadow the embedded one, got %v", n)
	}
	if x := ir.Get(node, "X"); x == nil || *x.Int64 != 1 {
		t.Errorf("embedded X must survive, got %v", x)
	}
}

func TestWalkBoxedUnwrap(t *testing.T) {
	n := 5
	w := New(LeafFunc(keepAll))
	node, ok := w.Walk(&n)
	if !ok || node.Int64 == nil || *node.Int64 != 5 {
		t.Errorf("boxed int must unwrap to its scalar, got %v", node)
	}
}

func TestWalkCycleOmit(t *testing.T) {
	a := make([]any, 2)
	a[0] = 1
	a[1] = a
	w := New(LeafFunc(keepAll))
	node, ok := w.Walk(a)
	if !ok {
		t.Fatal("top-level sequence must survive")
	}
	if len(node.Values) != 1 {
		t.Fatalf("back edge must be omitted, got %d values", len(node.Values))
	}
}

func TestWalkCycleMark(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	w := New(LeafFunc(keepAll), WithCycleMode(MarkCycles))
	node, _ := w.Walk(m)
	v := ir.Get(node, "self")
	if v == nil || v.String != CycleMarker {
		t.Errorf("back edge must become %q, got %v", CycleMarker, v)
	}
}

func TestWalkSiblingsNotCycles(t *testing.T) {
	// The same slice twice at the same depth is sharing, not a cycle.
	inner := []any{1}
	w := New(LeafFunc(keepAll))
	node, _ := w.Walk([]any{inner, inner})
	if len(node.Values) != 2 {
		t.Fatalf("shared siblings must both survive, got %d", len(node.Values))
	}
}

func TestWalkPrunesEmptyRecords(t *testing.T) {
	type inner struct {
		S string
	}
	type outer struct {
		A inner
		B int
	}
	w := New(LeafFunc(dropStrings), WithPolicy(Policy{PruneEmptyRecords: true}))
	node, _ := w.Walk(outer{A: inner{S: "gone"}, B: 1})
	if ir.Get(node, "A") != nil {
		t.Error("emptied record must be pruned")
	}
	if ir.Get(node, "B") == nil {
		t.Error("sibling must survive")
	}
}

func TestWalkTopLevelNeverPruned(t *testing.T) {
	type rec struct {
		S string
	}
	w := New(LeafFunc(dropStrings), WithPolicy(Policy{PruneEmptyRecords: true}))
	node, ok := w.Walk(rec{S: "gone"})
	if !ok {
		t.Fatal("top-level record must survive pruning")
	}
	if !node.IsEmpty() {
		t.Error("top-level record must come back empty")
	}
}

func TestWalkSequenceCompaction(t *testing.T) {
	w := New(LeafFunc(dropStrings))
	node, _ := w.Walk([]any{"a", 1, "b", 2})
	if len(node.Values) != 2 {
		t.Fatalf("omitted slots must compact, got %d values", len(node.Values))
	}
	if *node.Values[0].Int64 != 1 || *node.Values[1].Int64 != 2 {
		t.Error("surviving elements out of order")
	}
}

func TestWalkNumericSeqElementsRouteToLeaf(t *testing.T) {
	// Numeric sequence elements are numeric scalars; the leaf sees each one
	// with its numeric kind and may omit it like any other value.
	var kinds []kind.Kind
	leaf := func(v any, k kind.Kind) (*ir.Node, bool) {
		kinds = append(kinds, k)
		if k == kind.Float {
			return nil, false
		}
		return keepAll(v, k)
	}
	w := New(LeafFunc(leaf))
	node, _ := w.Walk([]byte{3, 1})
	if len(node.Values) != 2 {
		t.Fatalf("got %d values, want 2", len(node.Values))
	}
	for _, k := range kinds {
		if k != kind.Uint {
			t.Fatalf("byte elements must reach the leaf as %s, saw %s", kind.Uint, k)
		}
	}
	node, _ = w.Walk([]float64{1.5, 2.5})
	if len(node.Values) != 0 {
		t.Errorf("omitted float elements must compact away, got %d", len(node.Values))
	}
}

func TestWalkSetOrdered(t *testing.T) {
	w := New(LeafFunc(keepAll))
	node, _ := w.Walk(map[string]struct{}{"b": {}, "a": {}, "c": {}})
	if node.Tag != ir.SetTag {
		t.Fatalf("set must carry the set tag, got %q", node.Tag)
	}
	got := []string{}
	for _, v := range node.Values {
		got = append(got, v.String)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("set order: got %v, want %v", got, want)
		}
	}
}

func TestWalkMapLikeOrderedPairs(t *testing.T) {
	w := New(LeafFunc(keepAll))
	node, _ := w.Walk(map[int]string{2: "b", 1: "a"})
	if node.Tag != ir.MapTag {
		t.Fatalf("map-like must carry the map tag, got %q", node.Tag)
	}
	if len(node.Fields) != 2 {
		t.Fatalf("got %d pairs, want 2", len(node.Fields))
	}
	if *node.Fields[0].Int64 != 1 || *node.Fields[1].Int64 != 2 {
		t.Error("pairs must be ordered by key")
	}
}

func TestWalkMapLikeDropsHalfPairs(t *testing.T) {
	// A pair survives only when both key and value do.
	w := New(LeafFunc(dropStrings))
	node, _ := w.Walk(map[int]string{1: "a"})
	if len(node.Fields) != 0 {
		t.Errorf("pair with omitted value must be dropped, got %d", len(node.Fields))
	}
}

func TestWalkCollectionLeaves(t *testing.T) {
	var sawKind kind.Kind
	leaf := func(v any, k kind.Kind) (*ir.Node, bool) {
		sawKind = k
		return ir.FromString("leafed"), true
	}
	w := New(LeafFunc(leaf), WithCollectionLeaves())
	node, _ := w.Walk(map[string]struct{}{"a": {}})
	if sawKind != kind.SetLike {
		t.Errorf("set must route to the leaf, saw %s", sawKind)
	}
	if node.String != "leafed" {
		t.Error("leaf result must be used directly")
	}
}
