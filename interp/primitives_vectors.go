package interp

// registerVectorPrimitives defines the vector library of R5RS §4.7.
func registerVectorPrimitives(h *Heap, def definer) {
	def("vector?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*vectorValue)
		return it.Heap.Bool(ok), nil
	})
	def("make-vector", false, 1, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		k, err := asIndex("make-vector", args[0])
		if err != nil {
			return nil, err
		}
		var fill Value = it.Heap.EmptyList()
		if len(args) == 2 {
			fill = args[1]
		}
		elems := make([]Value, k)
		for i := range elems {
			elems[i] = fill
		}
		return it.Heap.NewVector(elems, false), nil
	})
	def("vector", false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		elems := make([]Value, len(args))
		copy(elems, args)
		return it.Heap.NewVector(elems, false), nil
	})
	def("vector-length", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v, err := asVector("vector-length", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewInt(int64(len(v.elems))), nil
	})
	def("vector-ref", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v, err := asVector("vector-ref", args[0])
		if err != nil {
			return nil, err
		}
		k, err := asIndex("vector-ref", args[1])
		if err != nil {
			return nil, err
		}
		if k >= len(v.elems) {
			return nil, outOfRange("vector-ref", args[1])
		}
		return v.elems[k], nil
	})
	def("vector-set!", false, 3, 3, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v, err := asVector("vector-set!", args[0])
		if err != nil {
			return nil, err
		}
		if v.readOnly {
			return nil, readOnlyErr("vector-set!")
		}
		k, err := asIndex("vector-set!", args[1])
		if err != nil {
			return nil, err
		}
		if k >= len(v.elems) {
			return nil, outOfRange("vector-set!", args[1])
		}
		v.elems[k] = args[2]
		return it.Heap.EmptyList(), nil
	})
	def("vector->list", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v, err := asVector("vector->list", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.ListFromSlice(v.elems), nil
	})
	def("list->vector", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		elems, err := sliceFromList(args[0], "list->vector")
		if err != nil {
			return nil, err
		}
		out := make([]Value, len(elems))
		copy(out, elems)
		return it.Heap.NewVector(out, false), nil
	})
	def("vector-fill!", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		v, err := asVector("vector-fill!", args[0])
		if err != nil {
			return nil, err
		}
		if v.readOnly {
			return nil, readOnlyErr("vector-fill!")
		}
		for i := range v.elems {
			v.elems[i] = args[1]
		}
		return it.Heap.EmptyList(), nil
	})
}
