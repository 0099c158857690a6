package coerce

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"github.com/deepval-dev/go-deepval/kind"
)

// InstantFormat is the fixed textual form of a date instant. Instants are
// rendered in UTC with millisecond precision.
const InstantFormat = "2006-01-02T15:04:05.000Z"

// InvalidInstant is the fixed marker for an invalid date on the textual
// paths; the numeric path uses the 0 sentinel instead.
const InvalidInstant = "Invalid Date"

// Instant returns the fixed textual form of a date.
func Instant(t time.Time) string {
	if t.IsZero() {
		return InvalidInstant
	}
	return t.UTC().Format(InstantFormat)
}

// EpochMillis returns the numeric form of a date: milliseconds since the
// Unix epoch, with 0 as the invalid-date sentinel.
func EpochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FloatText returns the canonical text of a float, including the special
// values: "NaN", "Infinity" and "-Infinity".
func FloatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// Text returns the canonical text form of a scalar value of kind k. The
// second result is false for kinds that have no text form (callables,
// deferred handles, opaque values, containers).
func Text(v any, k kind.Kind) (string, bool) {
	switch k {
	case kind.Nil:
		return "null", true
	case kind.Bool:
		if v.(bool) {
			return "true", true
		}
		return "false", true
	case kind.Int:
		return strconv.FormatInt(asInt64(v), 10), true
	case kind.Uint:
		return strconv.FormatUint(asUint64(v), 10), true
	case kind.Float:
		return FloatText(asFloat64(v)), true
	case kind.BigInt:
		return bigIntOf(v).String(), true
	case kind.String:
		return v.(string), true
	case kind.Date:
		return Instant(v.(time.Time)), true
	case kind.Regexp:
		return regexpOf(v).String(), true
	case kind.Error:
		err := v.(error)
		return fmt.Sprintf("%T: %s", err, err.Error()), true
	default:
		return "", false
	}
}

// ParseNumber parses text the way the numeric target does: integer first,
// then float. The result is discarded when the parse fails or yields a
// non-finite value.
func ParseNumber(s string) (int64, float64, bool, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, 0, true, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, 0, false, false
	}
	return 0, f, false, true
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	return 0
}

func asUint64(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	}
	return 0
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func bigIntOf(v any) *big.Int {
	switch x := v.(type) {
	case *big.Int:
		return x
	case big.Int:
		return &x
	}
	return new(big.Int)
}

func regexpOf(v any) *regexp.Regexp {
	switch x := v.(type) {
	case *regexp.Regexp:
		return x
	case regexp.Regexp:
		return &x
	}
	return nil
}
