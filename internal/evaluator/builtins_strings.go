package evaluator

import (
	"regexp"
	"strings"
)

func (e *Evaluator) stringBuiltins() []*Builtin {
	return []*Builtin{
		curry1("stringLength", func(v Value) (Value, error) {
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			return &Integer{Value: int64(len(s))}, nil
		}),
		curry3("substring", func(startV, lenV, sV Value) (Value, error) {
			start, err := e.forceInt(startV)
			if err != nil {
				return nil, err
			}
			length, err := e.forceInt(lenV)
			if err != nil {
				return nil, err
			}
			s, err := e.forceString(sV)
			if err != nil {
				return nil, err
			}
			if start < 0 || start > int64(len(s)) {
				return nil, &EvalError{Kind: KindOutOfBounds, Detail: "substring start out of range"}
			}
			end := start + length
			// Clamp rather than fail when start+len exceeds the string's
			// length.
			if length < 0 || end > int64(len(s)) {
				end = int64(len(s))
			}
			return &String{Value: s[start:end]}, nil
		}),
		curry2("concatStringsSep", func(sepV, listV Value) (Value, error) {
			sep, err := e.forceString(sepV)
			if err != nil {
				return nil, err
			}
			list, err := e.forceList(listV)
			if err != nil {
				return nil, err
			}
			parts := make([]string, len(list.Elements))
			for i, el := range list.Elements {
				s, err := e.forceString(el)
				if err != nil {
					return nil, err
				}
				parts[i] = s
			}
			return &String{Value: strings.Join(parts, sep)}, nil
		}),
		curry3("replaceStrings", func(fromV, toV, sV Value) (Value, error) {
			fromVal, err := e.forceDeep(fromV)
			if err != nil {
				return nil, err
			}
			toVal, err := e.forceDeep(toV)
			if err != nil {
				return nil, err
			}
			from, ok := fromVal.(*List)
			if !ok {
				return nil, typeMismatch("list", typeTag(fromVal))
			}
			to, ok := toVal.(*List)
			if !ok {
				return nil, typeMismatch("list", typeTag(toVal))
			}
			if len(from.Elements) != len(to.Elements) {
				return nil, &EvalError{Kind: KindReplaceStringsArgLength, Detail: "from and to must have equal length"}
			}
			fromStrs := make([]string, len(from.Elements))
			toStrs := make([]string, len(to.Elements))
			for i := range from.Elements {
				fs, ok := from.Elements[i].(*String)
				if !ok {
					return nil, typeMismatch("string", typeTag(from.Elements[i]))
				}
				ts, ok := to.Elements[i].(*String)
				if !ok {
					return nil, typeMismatch("string", typeTag(to.Elements[i]))
				}
				fromStrs[i] = fs.Value
				toStrs[i] = ts.Value
			}
			s, err := e.forceString(sV)
			if err != nil {
				return nil, err
			}
			for i := range fromStrs {
				s = strings.ReplaceAll(s, fromStrs[i], toStrs[i])
			}
			return &String{Value: s}, nil
		}),
		curry1("parseDrvName", func(v Value) (Value, error) {
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			name, version := s, ""
			hasVersion := false
			if idx := strings.IndexByte(s, '-'); idx >= 0 {
				name, version = s[:idx], s[idx+1:]
				hasVersion = true
			}
			result := EmptyAttrSet()
			result = result.Put("name", &String{Value: name})
			if hasVersion {
				result = result.Put("version", &String{Value: version})
			} else {
				result = result.Put("version", null)
			}
			return result, nil
		}),
		curry1("dirOf", func(v Value) (Value, error) {
			s, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			idx := strings.LastIndexByte(s, '/')
			if idx < 0 {
				return &String{Value: "."}, nil
			}
			if idx == 0 {
				return &String{Value: "/"}, nil
			}
			return &String{Value: s[:idx]}, nil
		}),
		curry1("toString", func(v Value) (Value, error) {
			s, err := e.toStringValue(v)
			if err != nil {
				return nil, err
			}
			return &String{Value: s}, nil
		}),
		curry2("match", func(reV, sV Value) (Value, error) {
			if !e.Caps.Regex {
				return nil, notEnabled("regex")
			}
			reStr, err := e.forceString(reV)
			if err != nil {
				return nil, err
			}
			s, err := e.forceString(sV)
			if err != nil {
				return nil, err
			}
			re, err := regexp.Compile("^(?:" + reStr + ")$")
			if err != nil {
				return nil, &EvalError{Kind: KindOpaqueRegex, Detail: err.Error()}
			}
			m := re.FindStringSubmatch(s)
			if m == nil {
				return null, nil
			}
			groups := m[1:]
			elems := make([]Value, len(groups))
			for i, g := range groups {
				elems[i] = &String{Value: g}
			}
			return newList(elems), nil
		}),
		curry2("split", func(reV, sV Value) (Value, error) {
			if !e.Caps.Regex {
				return nil, notEnabled("regex")
			}
			reStr, err := e.forceString(reV)
			if err != nil {
				return nil, err
			}
			s, err := e.forceString(sV)
			if err != nil {
				return nil, err
			}
			re, err := regexp.Compile(reStr)
			if err != nil {
				return nil, &EvalError{Kind: KindOpaqueRegex, Detail: err.Error()}
			}
			pieces := re.Split(s, -1)
			elems := make([]Value, len(pieces))
			for i, p := range pieces {
				elems[i] = &String{Value: p}
			}
			return newList(elems), nil
		}),
		curry1("getEnv", func(v Value) (Value, error) {
			name, err := e.forceString(v)
			if err != nil {
				return nil, err
			}
			val, ok := e.Getenv(name)
			if !ok {
				return null, nil
			}
			return &String{Value: val}, nil
		}),
	}
}
