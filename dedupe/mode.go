package dedupe

import "fmt"

// StringMode is the graduated force-to-string level.
type StringMode int

const (
	// StringOff compares and returns raw values.
	StringOff StringMode = iota
	// StringScalars converts only text and finite numeric scalars.
	StringScalars
	// StringPrimitives additionally converts the remaining primitive-ish
	// scalars: booleans, big ints, boxed scalars, NaN, infinities, and nil
	// as literal text.
	StringPrimitives
	// StringAll converts everything: dates to the fixed instant text,
	// regexps to their source, errors to "Type: message", map-like,
	// set-like, deferred and callable values to their default textual tags,
	// recursing into records and sequences so every leaf becomes text.
	StringAll
)

func (m StringMode) String() string {
	s, ok := map[StringMode]string{
		StringOff:        "off",
		StringScalars:    "scalars",
		StringPrimitives: "primitives",
		StringAll:        "all",
	}[m]
	if ok {
		return s
	}
	return "<unknown mode>"
}

func (m StringMode) valid() bool {
	return m >= StringOff && m <= StringAll
}

// ParseStringMode resolves a mode name. Anything other than the three
// graduated mode names (or "off") is a caller error.
func ParseStringMode(s string) (StringMode, error) {
	m, ok := map[string]StringMode{
		"off":        StringOff,
		"scalars":    StringScalars,
		"primitives": StringPrimitives,
		"all":        StringAll,
	}[s]
	if !ok {
		return 0, &ArgError{Arg: "forceString", Message: fmt.Sprintf("unrecognized mode %q", s)}
	}
	return m, nil
}

// ArgError reports a caller contract violation, detected eagerly before any
// traversal begins.
type ArgError struct {
	Arg     string
	Message string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("dedupe: invalid %s: %s", e.Arg, e.Message)
}
