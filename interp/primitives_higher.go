package interp

// registerHigherOrderPrimitives defines procedure?, apply, map, for-each
// and force, per R5RS §4.7.
func registerHigherOrderPrimitives(h *Heap, def definer) {
	def("procedure?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(asLambdaOrPrimitive(args[0])), nil
	})
	def("apply", false, 2, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		proc := args[0]
		leading := args[1 : len(args)-1]
		tail, err := sliceFromList(args[len(args)-1], "apply")
		if err != nil {
			return nil, err
		}
		callArgs := make([]Value, 0, len(leading)+len(tail))
		callArgs = append(callArgs, leading...)
		callArgs = append(callArgs, tail...)
		return Apply(it, proc, callArgs)
	})
	def("map", false, 2, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		lists, n, err := equalLengthLists("map", args[1:])
		if err != nil {
			return nil, err
		}
		results := make([]Value, n)
		for i := 0; i < n; i++ {
			callArgs := make([]Value, len(lists))
			for j, l := range lists {
				callArgs[j] = l[i]
			}
			v, err := Apply(it, args[0], callArgs)
			if err != nil {
				return nil, err
			}
			results[i] = v
		}
		return it.Heap.ListFromSlice(results), nil
	})
	def("for-each", false, 2, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		lists, n, err := equalLengthLists("for-each", args[1:])
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			callArgs := make([]Value, len(lists))
			for j, l := range lists {
				callArgs[j] = l[i]
			}
			if _, err := Apply(it, args[0], callArgs); err != nil {
				return nil, err
			}
		}
		return it.Heap.EmptyList(), nil
	})
	def("force", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		p, ok := args[0].(*promiseValue)
		if !ok {
			return nil, wrongType("force", args[0])
		}
		if !p.forced {
			v, err := Eval(it, p.expr, p.env)
			if err != nil {
				return nil, err
			}
			p.value = v
			p.forced = true
		}
		return p.value, nil
	})
}

func equalLengthLists(proc string, listArgs []Value) ([][]Value, int, error) {
	lists := make([][]Value, len(listArgs))
	for i, a := range listArgs {
		elems, err := sliceFromList(a, proc)
		if err != nil {
			return nil, 0, err
		}
		lists[i] = elems
	}
	n := len(lists[0])
	for _, l := range lists[1:] {
		if len(l) != n {
			return nil, 0, newErr(CategoryWrongType, "%s: lists must have equal length", proc)
		}
	}
	return lists, n, nil
}
