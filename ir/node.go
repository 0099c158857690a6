package ir

import (
	"maps"
	"slices"
)

// Wrapper tags for collection inputs that have no direct output kind.
// A MapTag node is an ObjectType whose fields may be arbitrary key nodes;
// a SetTag node is an ArrayType holding the set's elements.
const (
	MapTag = "!map"
	SetTag = "!set"
)

// Leaf tags distinguishing normalized special scalars from plain text and
// numbers when nodes are used as structural-equality keys.
const (
	BigIntTag = "!bigint"
	DateTag   = "!date"
	RegexpTag = "!regexp"
	ErrorTag  = "!error"
	RefTag    = "!ref"
)

type Node struct {
	Type   Type
	Tag    string
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Tag = n.Tag
	dst.String = n.String
	dst.Bool = n.Bool
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.Fields = make([]*Node, len(n.Fields))
	for i, f := range n.Fields {
		dst.Fields[i] = f.Clone()
	}
	dst.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		dst.Values[i] = v.Clone()
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node with fields in ascending key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object node preserving pair order. Keys may be any
// node type; nil keys become null nodes.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(elems []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = elems
	return res
}

func ToMap(n *Node) map[string]*Node {
	if n.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(n.Fields))
	for i, field := range n.Fields {
		if field.Type == NullType {
			continue
		}
		res[field.String] = n.Values[i]
	}
	return res
}

func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].Type == StringType && n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// IsEmpty reports whether an object or array node has no surviving content.
// Leaf nodes are never empty.
func (n *Node) IsEmpty() bool {
	switch n.Type {
	case ObjectType:
		return len(n.Fields) == 0
	case ArrayType:
		return len(n.Values) == 0
	default:
		return false
	}
}

// Visit walks the node tree in pre and post order. f is called with
// isPost=false before descending and isPost=true after; returning dive=false
// from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
