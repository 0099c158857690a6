package coerce

import (
	"math"
	"math/big"
	"time"

	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/walk"
)

type config struct {
	policy walk.Policy
}

type Option func(*config)

// PruneEmptyRecords drops records that end up with no surviving fields,
// judged post-order on the transformed output.
func PruneEmptyRecords() Option {
	return func(c *config) { c.policy.PruneEmptyRecords = true }
}

// PruneEmptySequences drops sequences that end up with no surviving
// elements, judged post-order on the transformed output.
func PruneEmptySequences() Option {
	return func(c *config) { c.policy.PruneEmptySequences = true }
}

// Numeric deep-coerces v toward numbers. Text parses via the numeric parse;
// true/false become 1/0; dates become epoch milliseconds (0 when invalid);
// NaN, infinities, unparseable text, callables, deferred handles and opaque
// values are omitted. The second result is false when the top-level value
// itself is omitted.
func Numeric(v any, opts ...Option) (any, bool) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	w := walk.New(walk.LeafFunc(numericLeaf), walk.WithPolicy(cfg.policy))
	node, ok := w.Walk(v)
	if !ok {
		return nil, false
	}
	return ir.ToAny(node), true
}

// String deep-coerces v toward text. Every supported scalar converts to its
// canonical text form; NaN and infinities are representable here ("NaN",
// "Infinity") even though the numeric target omits them. Callables, deferred
// handles and opaque values are omitted. The second result is false when the
// top-level value itself is omitted.
func String(v any, opts ...Option) (any, bool) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	w := walk.New(walk.LeafFunc(textLeaf), walk.WithPolicy(cfg.policy))
	node, ok := w.Walk(v)
	if !ok {
		return nil, false
	}
	return ir.ToAny(node), true
}

func numericLeaf(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Bool:
		if v.(bool) {
			return ir.FromInt(1), true
		}
		return ir.FromInt(0), true
	case kind.Int:
		return ir.FromInt(asInt64(v)), true
	case kind.Uint:
		u := asUint64(v)
		if u > math.MaxInt64 {
			return ir.FromFloat(float64(u)), true
		}
		return ir.FromInt(int64(u)), true
	case kind.Float:
		f := asFloat64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return ir.FromFloat(f), true
	case kind.BigInt:
		b := bigIntOf(v)
		if b.IsInt64() {
			return ir.FromInt(b.Int64()), true
		}
		f, _ := new(big.Float).SetInt(b).Float64()
		if math.IsInf(f, 0) {
			return nil, false
		}
		return ir.FromFloat(f), true
	case kind.String:
		i, f, isInt, ok := ParseNumber(v.(string))
		if !ok {
			return nil, false
		}
		if isInt {
			return ir.FromInt(i), true
		}
		return ir.FromFloat(f), true
	case kind.Date:
		return ir.FromInt(EpochMillis(v.(time.Time))), true
	default:
		// nil, regexps, errors, callables, deferred, opaque
		return nil, false
	}
}

func textLeaf(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Nil, kind.Callable, kind.Deferred, kind.Opaque:
		return nil, false
	}
	s, ok := Text(v, k)
	if !ok {
		return nil, false
	}
	return ir.FromString(s), true
}
