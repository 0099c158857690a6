package coerce

import (
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNumericScalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
		kept bool
	}{
		{"int", 3, int64(3), true},
		{"float", 2.5, 2.5, true},
		{"bool true", true, int64(1), true},
		{"bool false", false, int64(0), true},
		{"numeric text int", "12", int64(12), true},
		{"numeric text float", "1.5", 1.5, true},
		{"unparseable text", "abc", nil, false},
		{"nan", math.NaN(), nil, false},
		{"inf", math.Inf(1), nil, false},
		{"nil", nil, nil, false},
		{"big int small", big.NewInt(7), int64(7), true},
	}
	for _, tc := range cases {
		got, kept := Numeric(tc.in)
		if kept != tc.kept {
			t.Errorf("%s: kept=%t, want %t", tc.name, kept, tc.kept)
			continue
		}
		if kept && got != tc.want {
			t.Errorf("%s: got %v (%T), want %v (%T)", tc.name, got, got, tc.want, tc.want)
		}
	}
}

func TestNumericIdempotent(t *testing.T) {
	in := map[string]any{"a": int64(1), "b": []any{2.5, int64(3)}}
	once, _ := Numeric(in)
	twice, _ := Numeric(once)
	if d := cmp.Diff(once, twice); d != "" {
		t.Errorf("numeric coercion must be idempotent (-once +twice):\n%s", d)
	}
}

func TestNumericDate(t *testing.T) {
	d := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	got, kept := Numeric(d)
	if !kept || got != d.UnixMilli() {
		t.Errorf("date must become epoch millis, got %v", got)
	}
	got, kept = Numeric(time.Time{})
	if !kept || got != int64(0) {
		t.Errorf("invalid date must become the 0 sentinel, got %v", got)
	}
}

func TestStringScalars(t *testing.T) {
	re := regexp.MustCompile("a+b")
	cases := []struct {
		name string
		in   any
		want any
		kept bool
	}{
		{"int", 3, "3", true},
		{"bool", true, "true", true},
		{"text stays", "x", "x", true},
		{"nan has text", math.NaN(), "NaN", true},
		{"inf has text", math.Inf(1), "Infinity", true},
		{"neg inf", math.Inf(-1), "-Infinity", true},
		{"big int", big.NewInt(10), "10", true},
		{"regexp source", re, "a+b", true},
		{"nil omitted", nil, nil, false},
		{"callable omitted", func() {}, nil, false},
	}
	for _, tc := range cases {
		got, kept := String(tc.in)
		if kept != tc.kept {
			t.Errorf("%s: kept=%t, want %t", tc.name, kept, tc.kept)
			continue
		}
		if kept && got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNumericStringAsymmetry(t *testing.T) {
	// NaN is unrepresentable numerically but has a text form.
	if _, kept := Numeric(math.NaN()); kept {
		t.Error("numeric NaN must be omitted")
	}
	if got, kept := String(math.NaN()); !kept || got != "NaN" {
		t.Errorf("string NaN must be \"NaN\", got %v", got)
	}
}

func TestStringError(t *testing.T) {
	err := &time.ParseError{Layout: "x", Value: "y"}
	got, kept := String(err)
	if !kept {
		t.Fatal("errors must have a text form")
	}
	s := got.(string)
	if s == "" || s == err.Error() {
		t.Errorf("error text must include the type, got %q", s)
	}
}

func TestPrunePostOrder(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{},
		"b": []any{},
		"c": map[string]any{"s": "abc"},
	}
	got, _ := Numeric(in, PruneEmptyRecords())
	want := map[string]any{"b": []any{}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("prune records (-want +got):\n%s", d)
	}

	got, _ = Numeric(in, PruneEmptyRecords(), PruneEmptySequences())
	want = map[string]any{}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("prune both (-want +got):\n%s", d)
	}
}

func TestPruneJudgesOutputNotInput(t *testing.T) {
	// The record is non-empty going in and empty only after coercion.
	in := []any{map[string]any{"k": "not a number"}}
	got, _ := Numeric(in, PruneEmptyRecords())
	if d := cmp.Diff([]any{}, got); d != "" {
		t.Errorf("post-coercion emptiness must prune (-want +got):\n%s", d)
	}
}

func TestNumericSequenceElements(t *testing.T) {
	// Byte-buffer elements are numeric scalars: the text target converts
	// them to decimal text, never to characters.
	got, _ := String([]byte{1, 2})
	want := []any{"1", "2"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("byte elements on the text target (-want +got):\n%s", d)
	}
	got, _ = Numeric([]byte{1, 2})
	want = []any{int64(1), int64(2)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("byte elements on the numeric target (-want +got):\n%s", d)
	}
}

func TestNumericSequenceNonFinite(t *testing.T) {
	// The numeric target omits non-finite elements inside fixed-width
	// float sequences just as it omits standalone NaN and Infinity; the
	// text target keeps them as their canonical text.
	got, _ := Numeric([]float64{math.NaN(), math.Inf(1), 1})
	want := []any{1.0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("non-finite elements must be omitted (-want +got):\n%s", d)
	}
	got, _ = String([]float64{math.NaN(), math.Inf(-1)})
	want = []any{"NaN", "-Infinity"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("non-finite elements as text (-want +got):\n%s", d)
	}
}

func TestNumericSequenceWideUint(t *testing.T) {
	got, _ := Numeric([]uint64{math.MaxUint64, 1})
	want := []any{float64(math.MaxUint64), int64(1)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wide uint elements must not wrap (-want +got):\n%s", d)
	}
}

func TestTruthy(t *testing.T) {
	n := 0
	m := 5
	falsy := []any{nil, false, 0, int8(0), uint(0), 0.0, "", math.NaN(), &n}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("Truthy(%v) = true, want false", v)
		}
	}
	truthy := []any{true, 1, -1, 0.5, "x", "false", "0", []any{}, map[string]any{}, &m}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("Truthy(%#v) = false, want true", v)
		}
	}
}
