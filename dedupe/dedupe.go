package dedupe

import (
	"fmt"
	"math"
	"reflect"

	"github.com/deepval-dev/go-deepval/coerce"
	"github.com/deepval-dev/go-deepval/debug"
	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/walk"
)

type config struct {
	flatten bool
	mode    StringMode
}

type Option func(*config)

// Flatten fully flattens sequences, set-likes and map-like values (to their
// values only) into one flat sequence, at unbounded depth, before a single
// dedup pass. Plain records are not flattened.
func Flatten() Option {
	return func(c *config) { c.flatten = true }
}

// ForceString converts elements to text at the given graduated level before
// comparing; the returned elements are the converted values.
func ForceString(m StringMode) Option {
	return func(c *config) { c.mode = m }
}

// Dedupe removes structurally equal elements from seq. Without Flatten,
// nested sequence elements are themselves recursively deduplicated with
// fresh seen sets rather than compared as whole units.
//
// A non-sequence first argument or an out-of-range ForceString mode is a
// caller error, reported before any traversal begins.
func Dedupe(seq any, opts ...Option) ([]any, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.mode.valid() {
		return nil, &ArgError{Arg: "forceString", Message: fmt.Sprintf("unrecognized mode %d", cfg.mode)}
	}
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, &ArgError{
			Arg:     "sequence",
			Message: fmt.Sprintf("first argument must be a sequence, got %s", kind.Of(seq)),
		}
	}

	t := walk.NewCycleTracker()
	var elems []any
	if cfg.flatten {
		elems = flattenValue(rv, t, nil)
	} else {
		elems = seqElems(rv)
	}
	return dedupeElems(elems, cfg, t), nil
}

func seqElems(rv reflect.Value) []any {
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

// dedupeElems runs one dedup pass with its own seen set. The seen set is
// hash-bucketed with a structural-compare confirmation, so hash collisions
// never collapse unequal elements.
func dedupeElems(elems []any, cfg *config, t *walk.CycleTracker) []any {
	seen := map[uint64][]*ir.Node{}
	out := []any{}
	for _, elem := range elems {
		outVal := elem
		if cfg.mode != StringOff {
			outVal = transformValue(outVal, cfg.mode)
		}
		if !cfg.flatten {
			if rv := seqValue(outVal); rv.IsValid() {
				if rv.Kind() == reflect.Slice {
					ref := rv.Pointer()
					if !t.Enter(ref) {
						outVal = dedupeElems(seqElems(rv), cfg, t)
						t.Exit(ref)
					}
				} else {
					outVal = dedupeElems(seqElems(rv), cfg, t)
				}
			}
		}
		key := normalize(outVal, cfg.mode)
		h := key.Hash()
		dup := false
		for _, n := range seen[h] {
			if ir.Equal(n, key) {
				dup = true
				break
			}
		}
		if debug.Dedupe() {
			debug.Logf("dedupe elem %T hash=%x dup=%t\n", elem, h, dup)
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], key)
		out = append(out, outVal)
	}
	return out
}

// seqValue returns the reflect value of v when v is a general sequence,
// unwrapping pointers; otherwise an invalid value. Numeric sequences are
// compared as whole units, they have no nested structure to dedup.
func seqValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if kind.OfValue(rv) == kind.Sequence {
			return rv
		}
	}
	return reflect.Value{}
}

// normalize builds the structural-equality key node for one element.
func normalize(v any, mode StringMode) *ir.Node {
	opts := []walk.Option{}
	if mode == StringAll {
		opts = append(opts, walk.WithCollectionLeaves())
	}
	leaf := rawLeaf
	if mode != StringOff {
		leaf = stringLeaf(mode)
	}
	w := walk.New(walk.LeafFunc(leaf), opts...)
	node, ok := w.Walk(v)
	if !ok {
		return ir.Null()
	}
	return node
}

// rawLeaf normalizes a leaf for comparison without converting it: special
// scalars get tagged nodes so they never collide with plain text or
// numbers, and reference-only values (callables, deferred handles) key on
// their identity, so two distinct closures never collapse.
func rawLeaf(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Nil:
		return ir.Null(), true
	case kind.Bool:
		return ir.FromBool(v.(bool)), true
	case kind.Int:
		return ir.FromInt(reflect.ValueOf(v).Int()), true
	case kind.Uint:
		u := reflect.ValueOf(v).Uint()
		if u > math.MaxInt64 {
			return ir.FromString(fmt.Sprintf("%d", u)).WithTag(ir.BigIntTag), true
		}
		return ir.FromInt(int64(u)), true
	case kind.Float:
		return ir.FromFloat(reflect.ValueOf(v).Float()), true
	case kind.String:
		return ir.FromString(v.(string)), true
	case kind.BigInt, kind.Date, kind.Regexp, kind.Error:
		s, _ := coerce.Text(v, k)
		return ir.FromString(s).WithTag(leafTag(k)), true
	case kind.Callable, kind.Deferred:
		return ir.FromString(fmt.Sprintf("%T@%p", v, v)).WithTag(ir.RefTag), true
	default:
		return ir.FromString(fmt.Sprint(v)).WithTag(ir.RefTag), true
	}
}

func leafTag(k kind.Kind) string {
	switch k {
	case kind.BigInt:
		return ir.BigIntTag
	case kind.Date:
		return ir.DateTag
	case kind.Regexp:
		return ir.RegexpTag
	case kind.Error:
		return ir.ErrorTag
	}
	return ir.RefTag
}

// stringLeaf converts covered leaves per the graduated mode and falls back
// to raw normalization for everything below the mode's level.
func stringLeaf(mode StringMode) walk.LeafFunc {
	return func(v any, k kind.Kind) (*ir.Node, bool) {
		if s, ok := convertScalar(v, k, mode); ok {
			return ir.FromString(s), true
		}
		return rawLeaf(v, k)
	}
}

// convertScalar reports whether mode covers a value of kind k, and its text.
func convertScalar(v any, k kind.Kind, mode StringMode) (string, bool) {
	switch k {
	case kind.String:
		return v.(string), true
	case kind.Int, kind.Uint:
		s, _ := coerce.Text(v, k)
		return s, true
	case kind.Float:
		f := reflect.ValueOf(v).Float()
		if (math.IsNaN(f) || math.IsInf(f, 0)) && mode < StringPrimitives {
			return "", false
		}
		return coerce.FloatText(f), true
	}
	if mode >= StringPrimitives {
		switch k {
		case kind.Bool, kind.BigInt, kind.Nil:
			s, _ := coerce.Text(v, k)
			return s, true
		}
	}
	if mode >= StringAll {
		switch k {
		case kind.Date, kind.Regexp, kind.Error:
			s, _ := coerce.Text(v, k)
			return s, true
		case kind.Callable, kind.Deferred, kind.Opaque, kind.SetLike, kind.MapLike:
			return fmt.Sprint(v), true
		}
	}
	return "", false
}
