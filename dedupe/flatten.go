package dedupe

import (
	"reflect"
	"slices"

	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/walk"
)

// flattenValue appends the fully flattened contents of rv to out. Sequences
// and set-likes flatten to their elements, map-likes to their values only;
// plain records and every leaf kind are terminal. Back edges into a
// container already on the path are skipped, so self-referential nesting
// terminates.
func flattenValue(rv reflect.Value, t *walk.CycleTracker, out []any) []any {
	if !rv.IsValid() {
		return append(out, nil)
	}
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return append(out, nil)
		}
		if rv.Kind() == reflect.Ptr {
			switch kind.OfValue(rv) {
			case kind.Boxed, kind.BigInt, kind.Regexp, kind.Error:
				return append(out, rv.Interface())
			}
		}
		rv = rv.Elem()
	}

	switch kind.OfValue(rv) {
	case kind.Sequence, kind.NumericSeq:
		if rv.Kind() == reflect.Slice {
			ref := rv.Pointer()
			if t.Enter(ref) {
				return out
			}
			defer t.Exit(ref)
		}
		for i := 0; i < rv.Len(); i++ {
			out = flattenValue(rv.Index(i), t, out)
		}
		return out
	case kind.SetLike:
		ref := rv.Pointer()
		if t.Enter(ref) {
			return out
		}
		defer t.Exit(ref)
		for _, elem := range orderedKeys(rv) {
			out = flattenValue(elem, t, out)
		}
		return out
	case kind.MapLike:
		ref := rv.Pointer()
		if t.Enter(ref) {
			return out
		}
		defer t.Exit(ref)
		for _, key := range orderedKeys(rv) {
			out = flattenValue(rv.MapIndex(key), t, out)
		}
		return out
	default:
		return append(out, rv.Interface())
	}
}

// orderedKeys returns a map's keys sorted under the engine's total order on
// their normalized forms. Go maps iterate in randomized order; flattening a
// set or map must not.
func orderedKeys(rv reflect.Value) []reflect.Value {
	w := walk.New(walk.LeafFunc(rawLeaf))
	type keyed struct {
		node *ir.Node
		val  reflect.Value
	}
	keys := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		node, ok := w.Walk(key.Interface())
		if !ok {
			node = ir.Null()
		}
		keys = append(keys, keyed{node: node, val: key})
	}
	slices.SortStableFunc(keys, func(a, b keyed) int {
		return ir.Compare(a.node, b.node)
	})
	res := make([]reflect.Value, len(keys))
	for i := range keys {
		res[i] = keys[i].val
	}
	return res
}
