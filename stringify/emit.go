package stringify

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/deepval-dev/go-deepval/ir"
)

type encState struct {
	depth  int
	indent int
	pretty bool
	w      io.Writer
}

func (es *encState) encode(n *ir.Node) error {
	switch n.Type {
	case ir.NullType:
		return es.writeString("null")
	case ir.BoolType:
		if n.Bool {
			return es.writeString("true")
		}
		return es.writeString("false")
	case ir.NumberType:
		return es.writeNumber(n)
	case ir.StringType:
		return es.writeQuoted(n.String)
	case ir.ArrayType:
		return es.writeArray(n)
	case ir.ObjectType:
		return es.writeObject(n)
	}
	return nil
}

func (es *encState) writeNumber(n *ir.Node) error {
	if n.Int64 != nil {
		return es.writeString(strconv.FormatInt(*n.Int64, 10))
	}
	if n.Float64 != nil {
		f := *n.Float64
		if f == float64(int64(f)) && f < 1e15 && f > -1e15 {
			return es.writeString(strconv.FormatInt(int64(f), 10))
		}
		return es.writeString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return es.writeString("0")
}

func (es *encState) writeQuoted(s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = es.w.Write(d)
	return err
}

func (es *encState) writeArray(n *ir.Node) error {
	if len(n.Values) == 0 {
		return es.writeString("[]")
	}
	if err := es.writeString("["); err != nil {
		return err
	}
	es.depth++
	for i, v := range n.Values {
		if i > 0 {
			if err := es.writeString(","); err != nil {
				return err
			}
		}
		if err := es.writeNL(); err != nil {
			return err
		}
		if err := es.encode(v); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(); err != nil {
		return err
	}
	return es.writeString("]")
}

func (es *encState) writeObject(n *ir.Node) error {
	if len(n.Fields) == 0 {
		return es.writeString("{}")
	}
	if err := es.writeString("{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range n.Fields {
		if i > 0 {
			if err := es.writeString(","); err != nil {
				return err
			}
		}
		if err := es.writeNL(); err != nil {
			return err
		}
		if err := es.writeQuoted(fieldText(field)); err != nil {
			return err
		}
		if es.pretty {
			if err := es.writeString(": "); err != nil {
				return err
			}
		} else {
			if err := es.writeString(":"); err != nil {
				return err
			}
		}
		if err := es.encode(n.Values[i]); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(); err != nil {
		return err
	}
	return es.writeString("}")
}

// fieldText is the text form of a record key.
func fieldText(field *ir.Node) string {
	switch field.Type {
	case ir.StringType:
		return field.String
	case ir.NumberType:
		if field.Int64 != nil {
			return strconv.FormatInt(*field.Int64, 10)
		}
		if field.Float64 != nil {
			return strconv.FormatFloat(*field.Float64, 'g', -1, 64)
		}
		return "0"
	case ir.BoolType:
		if field.Bool {
			return "true"
		}
		return "false"
	case ir.NullType:
		return "null"
	default:
		return field.String
	}
}

func (es *encState) writeNL() error {
	if !es.pretty {
		return nil
	}
	if err := es.writeString("\n"); err != nil {
		return err
	}
	return es.writeString(strings.Repeat(" ", es.depth*es.indent))
}

func (es *encState) writeString(s string) error {
	_, err := io.WriteString(es.w, s)
	return err
}
