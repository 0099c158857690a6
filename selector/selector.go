// Package selector evaluates expression programs against walkable values.
// Values are bridged to plain Go data before evaluation, so programs see
// maps, slices and scalars regardless of the caller's concrete types.
package selector

import (
	"fmt"
	"math"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/deepval-dev/go-deepval/coerce"
	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/stringify"
	"github.com/deepval-dev/go-deepval/walk"
)

// Match evaluates src against v, exposed to the program as "v". A boolean
// result is returned as is; any other result is judged by the engine's
// truthiness rules.
func Match(v any, src string) (bool, error) {
	prg, err := Compile(src)
	if err != nil {
		return false, err
	}
	return matchOne(prg, v)
}

// Select returns the elements of seq for which src evaluates truthy. The
// kept elements are the caller's raw values, not their bridged forms.
func Select(seq any, src string) ([]any, error) {
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("selector: first argument must be a sequence, got %s", kind.Of(seq))
	}
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	out := []any{}
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		ok, err := matchOne(prg, elem)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, elem)
		}
	}
	return out, nil
}

// Compile compiles src once for repeated evaluation.
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("selector: %w", err)
	}
	return prg, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("text", func(params ...any) (any, error) {
			res, _ := coerce.String(params[0])
			return res, nil
		},
			new(func(any) any)),
		expr.Function("num", func(params ...any) (any, error) {
			res, _ := coerce.Numeric(params[0])
			return res, nil
		},
			new(func(any) any)),
		expr.Function("truthy", func(params ...any) (any, error) {
			return coerce.Truthy(params[0]), nil
		},
			new(func(any) bool)),
		expr.Function("stable", func(params ...any) (any, error) {
			return stringify.Serialize(params[0])
		},
			new(func(any) string)),
	}
}

func matchOne(prg *vm.Program, v any) (bool, error) {
	env := map[string]any{"v": bridge(v)}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("selector: %w", err)
	}
	if b, ok := res.(bool); ok {
		return b, nil
	}
	return coerce.Truthy(res), nil
}

// bridge converts v to generic Go data: numbers stay numeric, special
// scalars take their canonical text, unrepresentable leaves become nil.
func bridge(v any) any {
	w := walk.New(walk.LeafFunc(bridgeLeaf))
	node, ok := w.Walk(v)
	if !ok {
		return nil
	}
	return ir.ToAny(node)
}

func bridgeLeaf(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Nil, kind.Callable, kind.Deferred, kind.Opaque:
		return ir.Null(), true
	case kind.Bool:
		return ir.FromBool(v.(bool)), true
	case kind.Int:
		return ir.FromInt(reflect.ValueOf(v).Int()), true
	case kind.Uint:
		u := reflect.ValueOf(v).Uint()
		if u > math.MaxInt64 {
			return ir.FromFloat(float64(u)), true
		}
		return ir.FromInt(int64(u)), true
	case kind.Float:
		return ir.FromFloat(reflect.ValueOf(v).Float()), true
	default:
		if s, ok := coerce.Text(v, k); ok {
			return ir.FromString(s), true
		}
		return ir.Null(), true
	}
}
