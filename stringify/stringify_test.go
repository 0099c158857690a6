package stringify

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func mustSerialize(t *testing.T, v any, opts ...Option) string {
	t.Helper()
	s, err := Serialize(v, opts...)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return s
}

func TestSerializeSortsKeys(t *testing.T) {
	got := mustSerialize(t, map[string]any{"z": 1, "a": 2})
	want := `{"a":2,"z":1}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	v := map[string]any{
		"m": map[string]any{"x": 1, "y": []any{"a", true, nil}},
		"s": map[string]struct{}{"q": {}, "p": {}},
	}
	first := mustSerialize(t, v)
	for i := 0; i < 20; i++ {
		if got := mustSerialize(t, v); got != first {
			t.Fatalf("serialization not stable:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestSerializeKeyOrderIndependent(t *testing.T) {
	type pair struct{ A, B int }
	a := mustSerialize(t, map[string]pair{"k1": {1, 2}, "k2": {3, 4}})
	b := mustSerialize(t, map[string]pair{"k2": {3, 4}, "k1": {1, 2}})
	if a != b {
		t.Errorf("equal maps must serialize identically:\n%s\nvs\n%s", a, b)
	}
}

func TestSerializeScalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"bool", true, "true"},
		{"int", -3, "-3"},
		{"integral float", 2.0, "2"},
		{"fractional float", 2.5, "2.5"},
		{"nan", math.NaN(), "null"},
		{"inf", math.Inf(1), "null"},
		{"string", "a\"b", `"a\"b"`},
		{"big int", big.NewInt(123), `"123"`},
		{"huge uint", uint64(math.MaxUint64), `"18446744073709551615"`},
		{"callable", func() {}, "null"},
		{"bytes", []byte{1, 2}, "[1,2]"},
	}
	for _, tc := range cases {
		if got := mustSerialize(t, tc.in); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSerializeNumericSeqElements(t *testing.T) {
	// Elements of fixed-width numeric sequences follow the scalar rules:
	// non-finite floats become the null placeholder, wide uints their
	// quoted decimal form. The output must stay valid.
	if got := mustSerialize(t, []float64{math.NaN(), math.Inf(1)}); got != "[null,null]" {
		t.Errorf("non-finite elements: got %s, want [null,null]", got)
	}
	if got := mustSerialize(t, []uint64{math.MaxUint64, 1}); got != `["18446744073709551615",1]` {
		t.Errorf("wide uint element: got %s", got)
	}
}

func TestSerializeDate(t *testing.T) {
	d := time.Date(2020, 1, 2, 3, 4, 5, 60e6, time.UTC)
	if got := mustSerialize(t, d); got != `"2020-01-02T03:04:05.060Z"` {
		t.Errorf("got %s", got)
	}
	if got := mustSerialize(t, time.Time{}); got != `"Invalid Date"` {
		t.Errorf("invalid date: got %s", got)
	}
}

func TestSerializeCycleMarker(t *testing.T) {
	a := make([]any, 2)
	a[0] = 1
	a[1] = a
	if got := mustSerialize(t, a); got != `[1,"[Circular]"]` {
		t.Errorf("got %s", got)
	}

	m := map[string]any{}
	m["self"] = m
	if got := mustSerialize(t, m); got != `{"self":"[Circular]"}` {
		t.Errorf("got %s", got)
	}
}

func TestSerializeSharedNotCycle(t *testing.T) {
	inner := []any{1}
	got := mustSerialize(t, []any{inner, inner})
	if got != "[[1],[1]]" {
		t.Errorf("shared siblings are not cycles: got %s", got)
	}
}

func TestSerializeWrappers(t *testing.T) {
	got := mustSerialize(t, map[int]string{2: "b", 1: "a"})
	if got != `{"map":[[1,"a"],[2,"b"]]}` {
		t.Errorf("map wrapper: got %s", got)
	}
	got = mustSerialize(t, map[string]struct{}{"b": {}, "a": {}})
	if got != `{"set":["a","b"]}` {
		t.Errorf("set wrapper: got %s", got)
	}
}

func TestSerializeKeepOrder(t *testing.T) {
	type rec struct {
		Z int
		A int
	}
	got := mustSerialize(t, rec{Z: 1, A: 2}, SortKeys(false))
	if got != `{"Z":1,"A":2}` {
		t.Errorf("unsorted struct keeps declaration order: got %s", got)
	}
	got = mustSerialize(t, rec{Z: 1, A: 2})
	if got != `{"A":2,"Z":1}` {
		t.Errorf("default sorts keys: got %s", got)
	}
}

func TestSerializeSortSequences(t *testing.T) {
	got := mustSerialize(t, []any{"b", 3, "a", nil}, SortSequences(true))
	if got != `[null,3,"a","b"]` {
		t.Errorf("got %s", got)
	}
}

func TestSerializePretty(t *testing.T) {
	v := map[string]any{
		"z": 1,
		"a": map[string]any{"d": 2, "c": 3},
	}
	got := mustSerialize(t, v, Pretty(true))
	want := `{
  "a": {
    "c": 3,
    "d": 2
  },
  "z": 1
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSerializePrettyEmpty(t *testing.T) {
	got := mustSerialize(t, map[string]any{"a": map[string]any{}, "b": []any{}}, Pretty(true))
	want := `{
  "a": {},
  "b": []
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
