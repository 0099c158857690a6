package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchRecordField(t *testing.T) {
	v := map[string]any{"n": 5, "s": "hi"}
	ok, err := Match(v, `v.n > 3 && v.s == "hi"`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !ok {
		t.Error("expected match")
	}
}

func TestMatchStruct(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}
	ok, err := Match(user{Name: "ada", Age: 36}, `v.Age >= 18`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !ok {
		t.Error("expected match on struct field")
	}
}

func TestMatchTruthyFallback(t *testing.T) {
	// A non-boolean result is judged by the truthiness rules.
	ok, err := Match(5, `v`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !ok {
		t.Error("nonzero number is truthy")
	}
	ok, err = Match("", `v`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if ok {
		t.Error("empty text is falsy")
	}
}

func TestSelect(t *testing.T) {
	got, err := Select([]any{1, 5, 2, 8}, `v > 2`)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if d := cmp.Diff([]any{5, 8}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSelectKeepsRawElements(t *testing.T) {
	type user struct{ Age int }
	in := []user{{17}, {30}}
	got, err := Select(in, `v.Age >= 18`)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d elements, want 1", len(got))
	}
	if _, ok := got[0].(user); !ok {
		t.Errorf("kept elements are the raw values, got %T", got[0])
	}
}

func TestSelectHelpers(t *testing.T) {
	got, err := Select([]any{1, "2", "x"}, `text(v) == "2"`)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0] != "2" {
		t.Errorf("got %v", got)
	}
}

func TestSelectNonSequence(t *testing.T) {
	if _, err := Select(42, `v`); err == nil {
		t.Error("expected error for non-sequence input")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Match(1, `v ==`); err == nil {
		t.Error("expected compile error")
	}
}
