package walk

import (
	"reflect"
	"slices"

	"github.com/deepval-dev/go-deepval/debug"
	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
)

// Leaf converts one non-container value into an output node. The kind is the
// value's classification after boxed-scalar unwrapping. The second result
// reports whether the value survives: false means the caller drops the
// key or slot entirely.
type Leaf interface {
	Leaf(v any, k kind.Kind) (*ir.Node, bool)
}

// LeafFunc adapts a function to the Leaf interface.
type LeafFunc func(v any, k kind.Kind) (*ir.Node, bool)

func (f LeafFunc) Leaf(v any, k kind.Kind) (*ir.Node, bool) {
	return f(v, k)
}

// Policy holds the post-order emptiness pruning flags. Emptiness is judged
// on the transformed output, never on the pre-transform input.
type Policy struct {
	PruneEmptyRecords   bool
	PruneEmptySequences bool
}

type Option func(*Walker)

func WithPolicy(p Policy) Option {
	return func(w *Walker) { w.policy = p }
}

func WithCycleMode(m CycleMode) Option {
	return func(w *Walker) { w.cycles = m }
}

// WithCollectionLeaves routes set-like and map-like values to the Leaf
// instead of recursing into them. Records and sequences always recurse.
func WithCollectionLeaves() Option {
	return func(w *Walker) { w.collLeaves = true }
}

// Walker orchestrates recursive descent over sequences, set-like and
// map-like containers and plain records, applying its Leaf to everything
// else. Walkers are stateless across calls; the cycle tracker is allocated
// fresh per Walk.
type Walker struct {
	leaf       Leaf
	policy     Policy
	cycles     CycleMode
	collLeaves bool
}

func New(leaf Leaf, opts ...Option) *Walker {
	w := &Walker{leaf: leaf}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk transforms v into an output node. The second result reports whether
// the top-level value survived: a top-level container always survives (it
// comes back empty rather than omitted), a top-level scalar may not.
func (w *Walker) Walk(v any) (*ir.Node, bool) {
	t := NewCycleTracker()
	return w.walk(reflect.ValueOf(v), t, true)
}

func (w *Walker) walk(val reflect.Value, t *CycleTracker, top bool) (*ir.Node, bool) {
	if !val.IsValid() {
		return w.leafNode(nil, kind.Nil)
	}
	for val.Kind() == reflect.Interface {
		if val.IsNil() {
			return w.leafNode(nil, kind.Nil)
		}
		val = val.Elem()
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return w.leafNode(nil, kind.Nil)
		}
		// Pointer-shaped special kinds stay whole.
		switch k := kind.OfValue(val); k {
		case kind.BigInt, kind.Regexp, kind.Error:
			return w.leafNode(val.Interface(), k)
		}
		ref := val.Pointer()
		if t.Enter(ref) {
			return w.cycleNode()
		}
		defer t.Exit(ref)
		return w.walk(val.Elem(), t, top)
	}

	k := kind.OfValue(val)
	if debug.Walk() {
		debug.Logf("walk %s %s\n", k, val.Type())
	}
	switch k {
	case kind.Sequence, kind.NumericSeq:
		return w.walkSequence(val, t, top)
	case kind.SetLike:
		if w.collLeaves {
			return w.leafNode(val.Interface(), k)
		}
		return w.walkSet(val, t)
	case kind.MapLike:
		if w.collLeaves {
			return w.leafNode(val.Interface(), k)
		}
		return w.walkMapLike(val, t)
	case kind.Record:
		if val.Kind() == reflect.Map {
			return w.walkMapRecord(val, t, top)
		}
		return w.walkStruct(val, t, top)
	case kind.Nil:
		return w.leafNode(nil, kind.Nil)
	default:
		return w.leafNode(val.Interface(), k)
	}
}

func (w *Walker) leafNode(v any, k kind.Kind) (*ir.Node, bool) {
	n, ok := w.leaf.Leaf(v, k)
	if debug.Leaf() {
		debug.Logf("leaf %s keep=%t\n", k, ok)
	}
	return n, ok
}

func (w *Walker) cycleNode() (*ir.Node, bool) {
	if w.cycles == MarkCycles {
		return ir.FromString(CycleMarker), true
	}
	return nil, false
}

// walkSequence handles slices and arrays. Numeric-sequence elements are
// plain numeric scalars and route through the leaf like every other value,
// so the operation's finite and width rules apply inside byte buffers too.
// Omitted slots are compacted, never left as holes.
func (w *Walker) walkSequence(val reflect.Value, t *CycleTracker, top bool) (*ir.Node, bool) {
	if val.Kind() == reflect.Slice {
		ref := val.Pointer()
		if t.Enter(ref) {
			return w.cycleNode()
		}
		defer t.Exit(ref)
	}

	n := val.Len()
	elems := make([]*ir.Node, 0, n)
	for i := 0; i < n; i++ {
		elem, keep := w.walk(val.Index(i), t, false)
		if !keep {
			continue
		}
		elems = append(elems, elem)
	}
	if len(elems) == 0 && w.policy.PruneEmptySequences && !top {
		return nil, false
	}
	return ir.FromSlice(elems), true
}

// walkSet handles map[T]struct{} values. Sets are unordered, so elements are
// emitted in the engine's total order for determinism. Empty set wrappers
// are never pruned; the emptiness policy covers records and sequences only.
func (w *Walker) walkSet(val reflect.Value, t *CycleTracker) (*ir.Node, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return w.cycleNode()
	}
	defer t.Exit(ref)

	elems := make([]*ir.Node, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		elem, keep := w.walk(iter.Key(), t, false)
		if !keep {
			continue
		}
		elems = append(elems, elem)
	}
	slices.SortStableFunc(elems, ir.Compare)
	return ir.FromSlice(elems).WithTag(ir.SetTag), true
}

// walkMapLike handles maps with non-string keys. Both key and value are
// transformed independently; a pair survives only when both do. Pairs are
// ordered by key under the engine's total order (Go maps expose no
// enumeration order to preserve).
func (w *Walker) walkMapLike(val reflect.Value, t *CycleTracker) (*ir.Node, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return w.cycleNode()
	}
	defer t.Exit(ref)

	kvs := make([]ir.KeyVal, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, keepKey := w.walk(iter.Key(), t, false)
		if !keepKey {
			continue
		}
		v, keepVal := w.walk(iter.Value(), t, false)
		if !keepVal {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
	}
	slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
		return ir.Compare(a.Key, b.Key)
	})
	return ir.FromKeyVals(kvs).WithTag(ir.MapTag), true
}

// walkMapRecord handles map[string]T values as plain records with
// key-sorted fields.
func (w *Walker) walkMapRecord(val reflect.Value, t *CycleTracker, top bool) (*ir.Node, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return w.cycleNode()
	}
	defer t.Exit(ref)

	m := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		v, keep := w.walk(iter.Value(), t, false)
		if !keep {
			continue
		}
		m[iter.Key().String()] = v
	}
	if len(m) == 0 && w.policy.PruneEmptyRecords && !top {
		return nil, false
	}
	return ir.FromMap(m), true
}

// walkStruct handles struct values as plain records in field declaration
// order. Embedded structs are flattened in place; on a field name conflict
// the shallower field wins, as encoding/json resolves it, and equal-depth
// conflicts keep the first occurrence. Unexported fields are skipped.
func (w *Walker) walkStruct(val reflect.Value, t *CycleTracker, top bool) (*ir.Node, bool) {
	kvs := w.structFields(val, t, nil, nil)
	if len(kvs) == 0 && w.policy.PruneEmptyRecords && !top {
		return nil, false
	}
	return ir.FromKeyVals(kvs), true
}

// structFields appends the record fields of val to kvs. shadow holds the
// names declared on shallower levels, which hide same-named fields here.
func (w *Walker) structFields(val reflect.Value, t *CycleTracker, kvs []ir.KeyVal, shadow map[string]bool) []ir.KeyVal {
	typ := val.Type()
	named := namedFields(typ)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)
		if field.Anonymous {
			if fieldVal.Kind() == reflect.Struct {
				kvs = w.structFields(fieldVal, t, kvs, nameUnion(shadow, named))
			}
			continue
		}
		if shadow[field.Name] || hasField(kvs, field.Name) {
			continue
		}
		v, keep := w.walk(fieldVal, t, false)
		if !keep {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(field.Name), Val: v})
	}
	return kvs
}

// namedFields collects the exported non-embedded field names declared
// directly on typ.
func namedFields(typ reflect.Type) map[string]bool {
	named := map[string]bool{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.IsExported() && !field.Anonymous {
			named[field.Name] = true
		}
	}
	return named
}

func nameUnion(a, b map[string]bool) map[string]bool {
	res := make(map[string]bool, len(a)+len(b))
	for name := range a {
		res[name] = true
	}
	for name := range b {
		res[name] = true
	}
	return res
}

func hasField(kvs []ir.KeyVal, name string) bool {
	for i := range kvs {
		if kvs[i].Key.Type == ir.StringType && kvs[i].Key.String == name {
			return true
		}
	}
	return false
}
