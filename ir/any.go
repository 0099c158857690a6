package ir

// ToAny rebuilds a node tree as plain Go values: objects become
// map[string]any, arrays []any, numbers int64 or float64, and the map/set
// wrapper tags are rebuilt as map[any]any and map[any]struct{}.
func ToAny(n *Node) any {
	switch n.Type {
	case ObjectType:
		switch n.Tag {
		case MapTag:
			keys := make([]any, len(n.Fields))
			vals := make([]any, len(n.Fields))
			hashable := true
			for i, field := range n.Fields {
				keys[i] = ToAny(field)
				vals[i] = ToAny(n.Values[i])
				switch keys[i].(type) {
				case map[string]any, map[any]any, map[any]struct{}, []any:
					hashable = false
				}
			}
			if !hashable {
				pairs := make([]any, len(keys))
				for i := range keys {
					pairs[i] = []any{keys[i], vals[i]}
				}
				return pairs
			}
			res := make(map[any]any, len(keys))
			for i := range keys {
				res[keys[i]] = vals[i]
			}
			return res
		}
		res := make(map[string]any, len(n.Fields))
		for i, field := range n.Fields {
			if field.Type == NullType {
				continue
			}
			res[field.String] = ToAny(n.Values[i])
		}
		return res
	case ArrayType:
		if n.Tag == SetTag {
			elems := make([]any, len(n.Values))
			hashable := true
			for i, v := range n.Values {
				elems[i] = ToAny(v)
				switch elems[i].(type) {
				case map[string]any, map[any]any, map[any]struct{}, []any:
					hashable = false
				}
			}
			// Elements that stopped being comparable (a record element
			// became a map) cannot rebuild a Go set; keep them as a slice.
			if !hashable {
				return elems
			}
			res := make(map[any]struct{}, len(elems))
			for _, e := range elems {
				res[e] = struct{}{}
			}
			return res
		}
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return float64(0)
	case BoolType:
		return n.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
