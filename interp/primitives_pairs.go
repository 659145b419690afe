package interp

// registerPairPrimitives defines the pair/list library of R5RS §4.7,
// plus the auto-generated c[ad]+r accessors.
func registerPairPrimitives(h *Heap, def definer) {
	def("cons", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Cons(args[0], args[1]), nil
	})
	def("car", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		p, err := asPair("car", args[0])
		if err != nil {
			return nil, err
		}
		return p.car, nil
	})
	def("cdr", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		p, err := asPair("cdr", args[0])
		if err != nil {
			return nil, err
		}
		return p.cdr, nil
	})
	def("set-car!", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		p, err := asPair("set-car!", args[0])
		if err != nil {
			return nil, err
		}
		if p.readOnly {
			return nil, readOnlyErr("set-car!")
		}
		p.car = args[1]
		return it.Heap.EmptyList(), nil
	})
	def("set-cdr!", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		p, err := asPair("set-cdr!", args[0])
		if err != nil {
			return nil, err
		}
		if p.readOnly {
			return nil, readOnlyErr("set-cdr!")
		}
		p.cdr = args[1]
		return it.Heap.EmptyList(), nil
	})
	def("pair?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*pairValue)
		return it.Heap.Bool(ok), nil
	})
	def("null?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*emptyListValue)
		return it.Heap.Bool(ok), nil
	})
	def("list?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(IsList(args[0])), nil
	})
	def("list", false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.ListFromSlice(args), nil
	})
	def("length", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		var n int64
		cur := args[0]
		for {
			switch t := cur.(type) {
			case *emptyListValue:
				return it.Heap.NewInt(n), nil
			case *pairValue:
				n++
				cur = t.cdr
			default:
				return nil, wrongType("length", args[0])
			}
		}
	})
	def("append", false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		if len(args) == 0 {
			return it.Heap.EmptyList(), nil
		}
		result := args[len(args)-1]
		for i := len(args) - 2; i >= 0; i-- {
			elems, err := sliceFromList(args[i], "append")
			if err != nil {
				return nil, err
			}
			result = it.Heap.prependToTail(elems, result)
		}
		return result, nil
	})
	def("reverse", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		elems, err := sliceFromList(args[0], "reverse")
		if err != nil {
			return nil, err
		}
		var rev []Value
		for i := len(elems) - 1; i >= 0; i-- {
			rev = append(rev, elems[i])
		}
		return it.Heap.ListFromSlice(rev), nil
	})
	def("list-tail", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		k, err := asIndex("list-tail", args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := 0; i < k; i++ {
			p, ok := cur.(*pairValue)
			if !ok {
				return nil, outOfRange("list-tail", args[1])
			}
			cur = p.cdr
		}
		return cur, nil
	})
	def("list-ref", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		k, err := asIndex("list-ref", args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := 0; i < k; i++ {
			p, ok := cur.(*pairValue)
			if !ok {
				return nil, outOfRange("list-ref", args[1])
			}
			cur = p.cdr
		}
		p, ok := cur.(*pairValue)
		if !ok {
			return nil, outOfRange("list-ref", args[1])
		}
		return p.car, nil
	})

	def("memq", false, 2, 2, memFn(Eq))
	def("memv", false, 2, 2, memFn(Eqv))
	def("member", false, 2, 2, memFn(Equal))
	def("assq", false, 2, 2, assFn("assq", Eq))
	def("assv", false, 2, 2, assFn("assv", Eqv))
	def("assoc", false, 2, 2, assFn("assoc", Equal))

	registerCxr(def)
}

func memFn(eqFn func(a, b Value) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		obj, cur := args[0], args[1]
		for {
			p, ok := cur.(*pairValue)
			if !ok {
				return it.Heap.Bool(false), nil
			}
			if eqFn(obj, p.car) {
				return p, nil
			}
			cur = p.cdr
		}
	}
}

func assFn(name string, eqFn func(a, b Value) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		obj, cur := args[0], args[1]
		for {
			p, ok := cur.(*pairValue)
			if !ok {
				return it.Heap.Bool(false), nil
			}
			entry, ok := p.car.(*pairValue)
			if !ok {
				return nil, wrongType(name, p.car)
			}
			if eqFn(obj, entry.car) {
				return entry, nil
			}
			cur = p.cdr
		}
	}
}

// registerCxr defines every c[ad]{2,4}r combination (car/cdr themselves are
// registered directly above), per R5RS §4.7's "auto-generated" note.
func registerCxr(def definer) {
	var combos []string
	var build func(cur string, depth int)
	build = func(cur string, depth int) {
		if depth > 0 {
			combos = append(combos, cur)
		}
		if depth == 4 {
			return
		}
		build(cur+"a", depth+1)
		build(cur+"d", depth+1)
	}
	build("", 0)
	for _, c := range combos {
		if len(c) < 2 {
			continue
		}
		ops := c
		def("c"+ops+"r", false, 1, 1, cxrFn(ops))
	}
}

func cxrFn(ops string) PrimFunc {
	name := "c" + ops + "r"
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v := args[0]
		for i := len(ops) - 1; i >= 0; i-- {
			p, ok := v.(*pairValue)
			if !ok {
				return nil, wrongType(name, v)
			}
			if ops[i] == 'a' {
				v = p.car
			} else {
				v = p.cdr
			}
		}
		return v, nil
	}
}
