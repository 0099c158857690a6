package coerce

import (
	"math"
	"reflect"

	"github.com/deepval-dev/go-deepval/kind"
)

// Truthy implements the falsy-by-construction table used for boxed boolean
// ancestry: a value is falsy exactly when it is nil, false, a numeric zero,
// the empty text, or NaN. Everything else is truthy — notably the text
// "false" and every container, empty or not. The table is intentionally
// preserved as documented rather than re-derived.
func Truthy(v any) bool {
	switch k := kind.Of(v); k {
	case kind.Nil:
		return false
	case kind.Bool:
		return v.(bool)
	case kind.Int:
		return asInt64(v) != 0
	case kind.Uint:
		return asUint64(v) != 0
	case kind.Float:
		f := asFloat64(v)
		return f != 0 && !math.IsNaN(f)
	case kind.BigInt:
		return bigIntOf(v).Sign() != 0
	case kind.String:
		return v.(string) != ""
	case kind.Boxed:
		// Boxed scalars follow their wrapped primitive's ancestry.
		return Truthy(reflect.ValueOf(v).Elem().Interface())
	default:
		return true
	}
}
