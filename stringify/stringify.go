package stringify

import (
	"bytes"
	"io"
	"math"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/deepval-dev/go-deepval/coerce"
	"github.com/deepval-dev/go-deepval/ir"
	"github.com/deepval-dev/go-deepval/kind"
	"github.com/deepval-dev/go-deepval/walk"
)

// Serialize renders v as stable text. Record keys are sorted by default;
// see SortKeys, SortSequences and Pretty for the layout knobs.
func Serialize(v any, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders v as stable text onto w.
func Write(v any, w io.Writer, opts ...Option) error {
	o := &options{sortKeys: true}
	for _, opt := range opts {
		opt(o)
	}
	node := Node(v, opts...)
	es := &encState{indent: 2, pretty: o.pretty, w: w}
	return es.encode(node)
}

// Node builds the ordered output node tree for v without rendering it.
func Node(v any, opts ...Option) *ir.Node {
	o := &options{sortKeys: true}
	for _, opt := range opts {
		opt(o)
	}
	w := walk.New(walk.LeafFunc(serializeLeaf), walk.WithCycleMode(walk.MarkCycles))
	node, _ := w.Walk(v)
	order(node, o)
	expandWrappers(node)
	return node
}

// serializeLeaf always keeps: every kind has a representation here, with a
// null placeholder for the unsupported ones.
func serializeLeaf(v any, k kind.Kind) (*ir.Node, bool) {
	switch k {
	case kind.Nil, kind.Callable, kind.Deferred, kind.Opaque:
		return ir.Null(), true
	case kind.Bool:
		return ir.FromBool(v.(bool)), true
	case kind.Int:
		return intNode(v), true
	case kind.Uint:
		return uintNode(v), true
	case kind.Float:
		f := floatOf(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// No numeric text form; same null placeholder JSON gives them.
			return ir.Null(), true
		}
		return ir.FromFloat(f), true
	case kind.Date:
		return ir.FromString(coerce.Instant(v.(time.Time))), true
	default:
		// strings, big ints (decimal text), regexps (source), errors
		if s, ok := coerce.Text(v, k); ok {
			return ir.FromString(s), true
		}
		return ir.Null(), true
	}
}

func intNode(v any) *ir.Node {
	switch x := v.(type) {
	case int:
		return ir.FromInt(int64(x))
	case int8:
		return ir.FromInt(int64(x))
	case int16:
		return ir.FromInt(int64(x))
	case int32:
		return ir.FromInt(int64(x))
	case int64:
		return ir.FromInt(x)
	}
	return ir.Null()
}

func uintNode(v any) *ir.Node {
	var u uint64
	switch x := v.(type) {
	case uint:
		u = uint64(x)
	case uint8:
		u = uint64(x)
	case uint16:
		u = uint64(x)
	case uint32:
		u = uint64(x)
	case uint64:
		u = x
	}
	if u > math.MaxInt64 {
		// Too wide for the int64 slot; decimal text keeps the exact value.
		return ir.FromString(strconv.FormatUint(u, 10))
	}
	return ir.FromInt(int64(u))
}

func floatOf(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

// expandWrappers rewrites tagged map/set nodes into their serialized wrapper
// shapes: {"map": [[key, value], ...]} and {"set": [...]}.
func expandWrappers(n *ir.Node) {
	switch n.Type {
	case ir.ObjectType:
		if n.Tag == ir.MapTag {
			pairs := make([]*ir.Node, len(n.Fields))
			for i, field := range n.Fields {
				expandWrappers(field)
				expandWrappers(n.Values[i])
				pairs[i] = ir.FromSlice([]*ir.Node{field, n.Values[i]})
			}
			inner := ir.FromSlice(pairs)
			*n = *ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("map"), Val: inner}})
			return
		}
		for i := range n.Fields {
			expandWrappers(n.Values[i])
		}
	case ir.ArrayType:
		if n.Tag == ir.SetTag {
			for _, v := range n.Values {
				expandWrappers(v)
			}
			inner := ir.FromSlice(n.Values)
			*n = *ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("set"), Val: inner}})
			return
		}
		for _, v := range n.Values {
			expandWrappers(v)
		}
	}
}

// order applies the ordering policy recursively at every nesting level.
// Tagged map/set nodes keep their construction order (already the engine's
// key order); their children still get ordered.
func order(n *ir.Node, o *options) {
	switch n.Type {
	case ir.ObjectType:
		for i := range n.Fields {
			order(n.Fields[i], o)
			order(n.Values[i], o)
		}
		if o.sortKeys && n.Tag == "" {
			sortFields(n)
		}
	case ir.ArrayType:
		for _, v := range n.Values {
			order(v, o)
		}
		if o.sortSequences && n.Tag == "" {
			slices.SortStableFunc(n.Values, ir.Compare)
		}
	}
}

func sortFields(n *ir.Node) {
	type pair struct {
		field *ir.Node
		value *ir.Node
	}
	pairs := make([]pair, len(n.Fields))
	for i := range n.Fields {
		pairs[i] = pair{n.Fields[i], n.Values[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].field.String < pairs[j].field.String
	})
	for i := range pairs {
		n.Fields[i] = pairs[i].field
		n.Values[i] = pairs[i].value
	}
}
