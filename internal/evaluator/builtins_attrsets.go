package evaluator

func (e *Evaluator) attrSetBuiltins() []*Builtin {
	return []*Builtin{
		curry1("attrNames", func(v Value) (Value, error) {
			set, err := e.forceAttrSet(v)
			if err != nil {
				return nil, err
			}
			keys := set.Keys()
			elems := make([]Value, len(keys))
			for i, k := range keys {
				elems[i] = &String{Value: k}
			}
			return newList(elems), nil
		}),
		curry1("attrValues", func(v Value) (Value, error) {
			set, err := e.forceAttrSet(v)
			if err != nil {
				return nil, err
			}
			keys := set.Keys()
			elems := make([]Value, len(keys))
			for i, k := range keys {
				elems[i], _ = set.Get(k)
			}
			return newList(elems), nil
		}),
		curry2("getAttr", func(nameV, setV Value) (Value, error) {
			name, err := e.forceString(nameV)
			if err != nil {
				return nil, err
			}
			set, err := e.forceAttrSet(setV)
			if err != nil {
				return nil, err
			}
			if v, ok := set.Get(name); ok {
				return v, nil
			}
			return null, nil
		}),
		curry2("hasAttr", func(nameV, setV Value) (Value, error) {
			name, err := e.forceString(nameV)
			if err != nil {
				return nil, err
			}
			set, err := e.forceAttrSet(setV)
			if err != nil {
				return nil, err
			}
			_, ok := set.Get(name)
			return &Boolean{Value: ok}, nil
		}),
		curry2("intersectAttrs", func(aV, bV Value) (Value, error) {
			a, err := e.forceAttrSet(aV)
			if err != nil {
				return nil, err
			}
			b, err := e.forceAttrSet(bV)
			if err != nil {
				return nil, err
			}
			result := EmptyAttrSet()
			for _, k := range b.Keys() {
				if _, ok := a.Get(k); ok {
					v, _ := b.Get(k)
					result = result.Put(k, v)
				}
			}
			return result, nil
		}),
		curry1("listToAttrs", func(v Value) (Value, error) {
			list, err := e.forceList(v)
			if err != nil {
				return nil, err
			}
			result := EmptyAttrSet()
			for _, el := range list.Elements {
				rec, err := e.forceAttrSet(el)
				if err != nil {
					return nil, err
				}
				nameV, ok := rec.Get("name")
				if !ok {
					return nil, &EvalError{Kind: KindMissingAttr, Name: "name"}
				}
				name, err := e.forceString(nameV)
				if err != nil {
					return nil, err
				}
				value, ok := rec.Get("value")
				if !ok {
					return nil, &EvalError{Kind: KindMissingAttr, Name: "value"}
				}
				result = result.Put(name, value)
			}
			return result, nil
		}),
		curry2("removeAttrs", func(setV, keysV Value) (Value, error) {
			set, err := e.forceAttrSet(setV)
			if err != nil {
				return nil, err
			}
			keysList, err := e.forceList(keysV)
			if err != nil {
				return nil, err
			}
			result := set
			for _, kv := range keysList.Elements {
				k, err := e.forceString(kv)
				if err != nil {
					return nil, err
				}
				result = result.Remove(k)
			}
			return result, nil
		}),
		curry2("catAttrs", func(nameV, listV Value) (Value, error) {
			name, err := e.forceString(nameV)
			if err != nil {
				return nil, err
			}
			list, err := e.forceList(listV)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, el := range list.Elements {
				set, err := e.forceAttrSet(el)
				if err != nil {
					return nil, err
				}
				if v, ok := set.Get(name); ok {
					out = append(out, v)
				}
			}
			return newList(out), nil
		}),
		curry2("mapAttrs", func(fV, setV Value) (Value, error) {
			f, err := e.forceWeak(fV)
			if err != nil {
				return nil, err
			}
			if !IsCallable(f) {
				return nil, typeMismatch("function", typeTag(f))
			}
			set, err := e.forceAttrSet(setV)
			if err != nil {
				return nil, err
			}
			result := EmptyAttrSet()
			for _, k := range set.Keys() {
				v, _ := set.Get(k)
				applied, err := e.ApplyFunction(f, &String{Value: k})
				if err != nil {
					return nil, err
				}
				forcedFn, err := e.forceWeak(applied)
				if err != nil {
					return nil, err
				}
				if !IsCallable(forcedFn) {
					return nil, typeMismatch("function", typeTag(forcedFn))
				}
				mapped, err := e.ApplyFunction(forcedFn, v)
				if err != nil {
					return nil, err
				}
				result = result.Put(k, mapped)
			}
			return result, nil
		}),
	}
}

func (e *Evaluator) forceAttrSet(v Value) (*AttrSet, error) {
	f, err := e.forceWeak(v)
	if err != nil {
		return nil, err
	}
	set, ok := f.(*AttrSet)
	if !ok {
		return nil, typeMismatch("set", typeTag(f))
	}
	return set, nil
}

func (e *Evaluator) forceList(v Value) (*List, error) {
	f, err := e.forceWeak(v)
	if err != nil {
		return nil, err
	}
	list, ok := f.(*List)
	if !ok {
		return nil, typeMismatch("list", typeTag(f))
	}
	return list, nil
}

func (e *Evaluator) forceString(v Value) (string, error) {
	f, err := e.forceWeak(v)
	if err != nil {
		return "", err
	}
	s, ok := f.(*String)
	if !ok {
		return "", typeMismatch("string", typeTag(f))
	}
	return s.Value, nil
}
