package kind

import "fmt"

// Kind is the semantic kind of a Go value as seen by the traversal engine.
// Every value has exactly one kind; classification is pure and never panics.
type Kind int

const (
	Nil Kind = iota
	Bool
	Int
	Uint
	Float
	BigInt
	String
	Boxed
	Date
	Regexp
	Error
	Deferred
	Callable
	NumericSeq
	Sequence
	SetLike
	MapLike
	Record
	Opaque
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Nil:        "Nil",
		Bool:       "Bool",
		Int:        "Int",
		Uint:       "Uint",
		Float:      "Float",
		BigInt:     "BigInt",
		String:     "String",
		Boxed:      "Boxed",
		Date:       "Date",
		Regexp:     "Regexp",
		Error:      "Error",
		Deferred:   "Deferred",
		Callable:   "Callable",
		NumericSeq: "NumericSeq",
		Sequence:   "Sequence",
		SetLike:    "SetLike",
		MapLike:    "MapLike",
		Record:     "Record",
		Opaque:     "Opaque",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Nil":        Nil,
		"Bool":       Bool,
		"Int":        Int,
		"Uint":       Uint,
		"Float":      Float,
		"BigInt":     BigInt,
		"String":     String,
		"Boxed":      Boxed,
		"Date":       Date,
		"Regexp":     Regexp,
		"Error":      Error,
		"Deferred":   Deferred,
		"Callable":   Callable,
		"NumericSeq": NumericSeq,
		"Sequence":   Sequence,
		"SetLike":    SetLike,
		"MapLike":    MapLike,
		"Record":     Record,
		"Opaque":     Opaque,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		Nil,
		Bool,
		Int,
		Uint,
		Float,
		BigInt,
		String,
		Boxed,
		Date,
		Regexp,
		Error,
		Deferred,
		Callable,
		NumericSeq,
		Sequence,
		SetLike,
		MapLike,
		Record,
		Opaque,
	}
}

// IsContainer reports whether values of kind k have elements the walker
// recurses into.
func (k Kind) IsContainer() bool {
	switch k {
	case NumericSeq, Sequence, SetLike, MapLike, Record:
		return true
	default:
		return false
	}
}

// IsScalar reports whether k is a non-container, non-nil leaf kind.
func (k Kind) IsScalar() bool {
	switch k {
	case Bool, Int, Uint, Float, BigInt, String, Boxed, Date, Regexp, Error:
		return true
	default:
		return false
	}
}

// Coercible reports whether values of kind k are ever eligible for numeric
// or string coercion. Callables, deferred handles and opaque values never are.
func (k Kind) Coercible() bool {
	switch k {
	case Callable, Deferred, Opaque, Nil:
		return false
	default:
		return true
	}
}
