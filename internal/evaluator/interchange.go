package evaluator

import (
	"bytes"
	"encoding/json"
	"strconv"
)

func (e *Evaluator) interchangeBuiltins() []*Builtin {
	return []*Builtin{
		curry1("fromJSON", func(v Value) (Value, error) {
			if !e.Caps.JSON {
				return nil, notEnabled("json")
			}
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			dec := json.NewDecoder(bytes.NewReader([]byte(s)))
			dec.UseNumber()
			var tree interface{}
			if err := dec.Decode(&tree); err != nil {
				return nil, &EvalError{Kind: KindOpaqueJSON, Detail: err.Error()}
			}
			return fromJSONTree(tree), nil
		}),
		curry1("toJSON", func(v Value) (Value, error) {
			if !e.Caps.JSON {
				return nil, notEnabled("json")
			}
			forced, err := e.forceDeep(v)
			if err != nil {
				return nil, err
			}
			tree, err := toJSONTree(forced)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(tree)
			if err != nil {
				return nil, &EvalError{Kind: KindOpaqueJSON, Detail: err.Error()}
			}
			return &String{Value: string(data)}, nil
		}),
	}
}

// fromJSONTree converts a generic decoded JSON tree (json.Number for
// numbers) into the corresponding Value, preferring Integer when a
// number is exactly representable as one.
func fromJSONTree(tree interface{}) Value {
	switch x := tree.(type) {
	case nil:
		return null
	case bool:
		return &Boolean{Value: x}
	case string:
		return &String{Value: x}
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return &Integer{Value: i}
		}
		f, _ := x.Float64()
		return &Floating{Value: f}
	case []interface{}:
		elems := make([]Value, len(x))
		for i, el := range x {
			elems[i] = fromJSONTree(el)
		}
		return newList(elems)
	case map[string]interface{}:
		set := EmptyAttrSet()
		for k, val := range x {
			set = set.Put(k, fromJSONTree(val))
		}
		return set
	}
	return null
}

// toJSONTree converts a deep-forced Value into a generic tree
// encoding/json can marshal. Function/Builtin are not representable.
func toJSONTree(v Value) (interface{}, error) {
	switch x := v.(type) {
	case *Null:
		return nil, nil
	case *Boolean:
		return x.Value, nil
	case *Integer:
		return x.Value, nil
	case *Floating:
		return x.Value, nil
	case *String:
		return x.Value, nil
	case *Path:
		return x.Value, nil
	case *List:
		out := make([]interface{}, len(x.Elements))
		for i, el := range x.Elements {
			v, err := toJSONTree(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case *AttrSet:
		out := make(map[string]interface{}, x.Len())
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			v, err := toJSONTree(val)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case *Function, *Builtin:
		return nil, &EvalError{Kind: KindCannotSerialize, Actual: typeTag(v)}
	}
	return nil, &EvalError{Kind: KindCannotSerialize, Actual: typeTag(v)}
}
