package dedupe

import (
	"fmt"
	"reflect"

	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/walk"
)

// transformValue rebuilds v with every leaf the mode covers converted to
// text, leaving uncovered leaves raw. Containers come back as generic Go
// values (maps, slices); back edges are dropped the way the walker drops
// them, so cyclic inputs terminate.
func transformValue(v any, mode StringMode) any {
	t := walk.NewCycleTracker()
	out, _ := transform(reflect.ValueOf(v), mode, t)
	return out
}

func transform(val reflect.Value, mode StringMode, t *walk.CycleTracker) (any, bool) {
	if !val.IsValid() {
		return scalarOut(nil, kind.Nil, mode), true
	}
	for val.Kind() == reflect.Interface {
		if val.IsNil() {
			return scalarOut(nil, kind.Nil, mode), true
		}
		val = val.Elem()
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return scalarOut(nil, kind.Nil, mode), true
		}
		switch k := kind.OfValue(val); k {
		case kind.BigInt, kind.Regexp, kind.Error:
			return scalarOut(val.Interface(), k, mode), true
		}
		ref := val.Pointer()
		if t.Enter(ref) {
			return nil, false
		}
		defer t.Exit(ref)
		return transform(val.Elem(), mode, t)
	}

	k := kind.OfValue(val)
	switch k {
	case kind.NumericSeq:
		// Elements of a byte buffer are numeric scalars; the mode's scalar
		// coverage applies to them exactly as it does to standalone numbers,
		// matching the normalization path.
		out := make([]any, val.Len())
		for i := range out {
			elem := val.Index(i)
			out[i] = scalarOut(elem.Interface(), kind.OfValue(elem), mode)
		}
		return out, true
	case kind.Sequence:
		return transformSequence(val, mode, t)
	case kind.SetLike:
		if mode == StringAll {
			return fmt.Sprint(val.Interface()), true
		}
		return transformSet(val, mode, t)
	case kind.MapLike:
		if mode == StringAll {
			return fmt.Sprint(val.Interface()), true
		}
		return transformMapLike(val, mode, t)
	case kind.Record:
		if val.Kind() == reflect.Map {
			return transformMapRecord(val, mode, t)
		}
		return transformStruct(val, mode, t), true
	case kind.Nil:
		return scalarOut(nil, kind.Nil, mode), true
	default:
		return scalarOut(val.Interface(), k, mode), true
	}
}

func scalarOut(v any, k kind.Kind, mode StringMode) any {
	if s, ok := convertScalar(v, k, mode); ok {
		return s
	}
	return v
}

func transformSequence(val reflect.Value, mode StringMode, t *walk.CycleTracker) (any, bool) {
	if val.Kind() == reflect.Slice {
		ref := val.Pointer()
		if t.Enter(ref) {
			return nil, false
		}
		defer t.Exit(ref)
	}
	out := make([]any, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		elem, keep := transform(val.Index(i), mode, t)
		if !keep {
			continue
		}
		out = append(out, elem)
	}
	return out, true
}

func transformSet(val reflect.Value, mode StringMode, t *walk.CycleTracker) (any, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return nil, false
	}
	defer t.Exit(ref)

	out := make(map[any]struct{}, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		elem, keep := transform(iter.Key(), mode, t)
		if !keep {
			continue
		}
		if !hashable(elem) {
			return setSlice(val, mode, t), true
		}
		out[elem] = struct{}{}
	}
	return out, true
}

// setSlice is the fallback for a set whose transformed elements are no
// longer hashable; the elements come back as an ordered slice instead.
func setSlice(val reflect.Value, mode StringMode, t *walk.CycleTracker) []any {
	out := []any{}
	for _, key := range orderedKeys(val) {
		elem, keep := transform(key, mode, t)
		if !keep {
			continue
		}
		out = append(out, elem)
	}
	return out
}

func transformMapLike(val reflect.Value, mode StringMode, t *walk.CycleTracker) (any, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return nil, false
	}
	defer t.Exit(ref)

	out := make(map[any]any, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, keepKey := transform(iter.Key(), mode, t)
		if !keepKey {
			continue
		}
		v, keepVal := transform(iter.Value(), mode, t)
		if !keepVal {
			continue
		}
		if !hashable(key) {
			return mapPairs(val, mode, t), true
		}
		out[key] = v
	}
	return out, true
}

// mapPairs is the fallback for a map whose transformed keys are no longer
// hashable: ordered [key, value] pairs.
func mapPairs(val reflect.Value, mode StringMode, t *walk.CycleTracker) []any {
	out := []any{}
	for _, key := range orderedKeys(val) {
		k, keepKey := transform(key, mode, t)
		if !keepKey {
			continue
		}
		v, keepVal := transform(val.MapIndex(key), mode, t)
		if !keepVal {
			continue
		}
		out = append(out, []any{k, v})
	}
	return out
}

func transformMapRecord(val reflect.Value, mode StringMode, t *walk.CycleTracker) (any, bool) {
	ref := val.Pointer()
	if t.Enter(ref) {
		return nil, false
	}
	defer t.Exit(ref)

	out := make(map[string]any, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		v, keep := transform(iter.Value(), mode, t)
		if !keep {
			continue
		}
		out[iter.Key().String()] = v
	}
	return out, true
}

// transformStruct rebuilds a struct as a string-keyed map, flattening
// embedded structs. On a field name conflict the shallower field wins, as
// encoding/json resolves it, matching the normalization walker.
func transformStruct(val reflect.Value, mode StringMode, t *walk.CycleTracker) map[string]any {
	out := map[string]any{}
	transformStructFields(val, mode, t, out, nil)
	return out
}

func transformStructFields(val reflect.Value, mode StringMode, t *walk.CycleTracker, out map[string]any, shadow map[string]bool) {
	typ := val.Type()
	named := map[string]bool{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.IsExported() && !field.Anonymous {
			named[field.Name] = true
		}
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)
		if field.Anonymous {
			if fieldVal.Kind() == reflect.Struct {
				deeper := make(map[string]bool, len(shadow)+len(named))
				for name := range shadow {
					deeper[name] = true
				}
				for name := range named {
					deeper[name] = true
				}
				transformStructFields(fieldVal, mode, t, out, deeper)
			}
			continue
		}
		if shadow[field.Name] {
			continue
		}
		if _, on := out[field.Name]; on {
			continue
		}
		v, keep := transform(fieldVal, mode, t)
		if !keep {
			continue
		}
		out[field.Name] = v
	}
}

func hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
