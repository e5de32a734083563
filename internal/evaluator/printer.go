package evaluator

import (
	"strconv"
	"strings"
)

// Render produces the stable, testable printed form of:
// scalars as their source-literal form, strings double-quoted, `null`
// for Null, Lists/AttrSets as multi-line bodies indented two spaces
// per level, and `<function>`/`<built-in function>` for callables.
// Render deep-forces v first, since an unevaluated thunk prints by
// forcing.
func (e *Evaluator) Render(v Value) (string, error) {
	forced, err := e.forceDeep(v)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := e.render(&sb, forced, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Evaluator) render(sb *strings.Builder, v Value, depth int) error {
	switch x := v.(type) {
	case *String:
		sb.WriteString(strconv.Quote(x.Value))
	case *Path:
		sb.WriteString(x.Value)
	case *Integer:
		sb.WriteString(strconv.FormatInt(x.Value, 10))
	case *Floating:
		sb.WriteString(strconv.FormatFloat(x.Value, 'g', -1, 64))
	case *Boolean:
		if x.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *Null:
		sb.WriteString("null")
	case *Function:
		sb.WriteString("<function>")
	case *Builtin:
		sb.WriteString("<built-in function>")
	case *List:
		if len(x.Elements) == 0 {
			sb.WriteString("[ ]")
			return nil
		}
		sb.WriteString("[\n")
		inner := strings.Repeat("  ", depth+1)
		for _, el := range x.Elements {
			forced, err := e.forceDeep(el)
			if err != nil {
				return err
			}
			sb.WriteString(inner)
			if err := e.render(sb, forced, depth+1); err != nil {
				return err
			}
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", depth) + "]")
	case *AttrSet:
		if x.Len() == 0 {
			sb.WriteString("{ }")
			return nil
		}
		sb.WriteString("{\n")
		inner := strings.Repeat("  ", depth+1)
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			forced, err := e.forceDeep(val)
			if err != nil {
				return err
			}
			sb.WriteString(inner)
			sb.WriteString(k)
			sb.WriteString(" = ")
			if err := e.render(sb, forced, depth+1); err != nil {
				return err
			}
			sb.WriteString(";\n")
		}
		sb.WriteString(strings.Repeat("  ", depth) + "}")
	default:
		return internalError(KindMismatch, "unrenderable value kind")
	}
	return nil
}
