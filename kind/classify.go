package kind

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

var (
	errType    = reflect.TypeOf((*error)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
	bigIntType = reflect.TypeOf(big.Int{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
)

// Of classifies an arbitrary value. It is pure, has no side effects and
// never panics; values with no better classification come back Opaque.
func Of(v any) Kind {
	if v == nil {
		return Nil
	}
	return OfValue(reflect.ValueOf(v))
}

// OfValue classifies a reflect.Value. Interfaces are unwrapped to their
// dynamic value before classification.
func OfValue(val reflect.Value) Kind {
	if !val.IsValid() {
		return Nil
	}
	typ := val.Type()

	// Special object kinds take precedence over their structural shape.
	switch typ {
	case timeType:
		return Date
	case bigIntType:
		return BigInt
	case regexpType:
		return Regexp
	}
	if typ.Kind() == reflect.Ptr && !val.IsNil() {
		switch typ.Elem() {
		case bigIntType:
			return BigInt
		case regexpType:
			return Regexp
		}
	}
	if typ.Implements(errType) {
		if canNil(typ.Kind()) && val.IsNil() {
			return Nil
		}
		return Error
	}

	switch typ.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	case reflect.Ptr:
		if val.IsNil() {
			return Nil
		}
		if OfValue(val.Elem()).IsScalar() {
			return Boxed
		}
		return OfValue(val.Elem())
	case reflect.Interface:
		if val.IsNil() {
			return Nil
		}
		return OfValue(val.Elem())
	case reflect.Slice:
		if val.IsNil() {
			return Nil
		}
		if fixedWidthNumeric(typ.Elem().Kind()) {
			return NumericSeq
		}
		return Sequence
	case reflect.Array:
		if fixedWidthNumeric(typ.Elem().Kind()) {
			return NumericSeq
		}
		return Sequence
	case reflect.Map:
		if val.IsNil() {
			return Nil
		}
		if typ.Elem().Kind() == reflect.Struct && typ.Elem().NumField() == 0 {
			return SetLike
		}
		if typ.Key().Kind() == reflect.String {
			return Record
		}
		return MapLike
	case reflect.Struct:
		return Record
	case reflect.Func:
		if val.IsNil() {
			return Nil
		}
		return Callable
	case reflect.Chan:
		if val.IsNil() {
			return Nil
		}
		return Deferred
	default:
		// complex, unsafe pointers, uintptr
		return Opaque
	}
}

// fixedWidthNumeric reports whether k is an explicitly-sized numeric element
// kind. Sequences of these classify as NumericSeq; machine-width int/uint
// sequences stay general sequences.
func fixedWidthNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func canNil(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	default:
		return false
	}
}

// IsNil reports whether v is nil or a nil reference value.
func IsNil(v any) bool {
	return Of(v) == Nil
}

// IsRecord reports whether v is a plain record (struct or string-keyed map).
func IsRecord(v any) bool {
	return Of(v) == Record
}

// IsSequence reports whether v is an ordered sequence, numeric or general.
func IsSequence(v any) bool {
	k := Of(v)
	return k == Sequence || k == NumericSeq
}

// IsContainer reports whether the walker recurses into v.
func IsContainer(v any) bool {
	return Of(v).IsContainer()
}
