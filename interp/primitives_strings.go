package interp

// registerStringPrimitives defines symbols-as-strings, string predicates
// and comparisons (case-sensitive and case-insensitive), and the mutable
// string library of R5RS §4.7. Strings produced by symbol->string are
// read-only, matching the source symbol's immutability.
func registerStringPrimitives(h *Heap, def definer) {
	def("symbol?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*symbolValue)
		return it.Heap.Bool(ok), nil
	})
	def("symbol->string", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		sym, err := asSymbol("symbol->string", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewString(sym.name, true), nil
	})
	def("string->symbol", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string->symbol", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Intern(string(s.bytes)), nil
	})

	def("string=?", false, 2, -1, strCmpFn("string=?", false, func(a, b string) bool { return a == b }))
	def("string<?", false, 2, -1, strCmpFn("string<?", false, func(a, b string) bool { return a < b }))
	def("string>?", false, 2, -1, strCmpFn("string>?", false, func(a, b string) bool { return a > b }))
	def("string<=?", false, 2, -1, strCmpFn("string<=?", false, func(a, b string) bool { return a <= b }))
	def("string>=?", false, 2, -1, strCmpFn("string>=?", false, func(a, b string) bool { return a >= b }))
	def("string-ci=?", false, 2, -1, strCmpFn("string-ci=?", true, func(a, b string) bool { return a == b }))
	def("string-ci<?", false, 2, -1, strCmpFn("string-ci<?", true, func(a, b string) bool { return a < b }))
	def("string-ci>?", false, 2, -1, strCmpFn("string-ci>?", true, func(a, b string) bool { return a > b }))
	def("string-ci<=?", false, 2, -1, strCmpFn("string-ci<=?", true, func(a, b string) bool { return a <= b }))
	def("string-ci>=?", false, 2, -1, strCmpFn("string-ci>=?", true, func(a, b string) bool { return a >= b }))

	def("make-string", false, 1, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		k, err := asIndex("make-string", args[0])
		if err != nil {
			return nil, err
		}
		fill := byte(' ')
		if len(args) == 2 {
			fill, err = asChar("make-string", args[1])
			if err != nil {
				return nil, err
			}
		}
		buf := make([]byte, k)
		for i := range buf {
			buf[i] = fill
		}
		return it.Heap.NewStringBytes(buf, false), nil
	})
	def("string", false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		buf := make([]byte, len(args))
		for i, a := range args {
			c, err := asChar("string", a)
			if err != nil {
				return nil, err
			}
			buf[i] = c
		}
		return it.Heap.NewStringBytes(buf, false), nil
	})
	def("string-length", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string-length", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewInt(int64(len(s.bytes))), nil
	})
	def("string-ref", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string-ref", args[0])
		if err != nil {
			return nil, err
		}
		k, err := asIndex("string-ref", args[1])
		if err != nil {
			return nil, err
		}
		if k >= len(s.bytes) {
			return nil, outOfRange("string-ref", args[1])
		}
		return it.Heap.NewChar(s.bytes[k]), nil
	})
	def("string-set!", false, 3, 3, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string-set!", args[0])
		if err != nil {
			return nil, err
		}
		if s.readOnly {
			return nil, readOnlyErr("string-set!")
		}
		k, err := asIndex("string-set!", args[1])
		if err != nil {
			return nil, err
		}
		if k >= len(s.bytes) {
			return nil, outOfRange("string-set!", args[1])
		}
		c, err := asChar("string-set!", args[2])
		if err != nil {
			return nil, err
		}
		s.bytes[k] = c
		return it.Heap.EmptyList(), nil
	})
	def("substring", false, 3, 3, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("substring", args[0])
		if err != nil {
			return nil, err
		}
		start, err := asIndex("substring", args[1])
		if err != nil {
			return nil, err
		}
		end, err := asIndex("substring", args[2])
		if err != nil {
			return nil, err
		}
		if start > end || end > len(s.bytes) {
			return nil, outOfRange("substring", args[2])
		}
		return it.Heap.NewString(string(s.bytes[start:end]), false), nil
	})
	def("string-append", false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		var buf []byte
		for _, a := range args {
			s, err := asString("string-append", a)
			if err != nil {
				return nil, err
			}
			buf = append(buf, s.bytes...)
		}
		return it.Heap.NewStringBytes(buf, false), nil
	})
	def("string->list", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string->list", args[0])
		if err != nil {
			return nil, err
		}
		elems := make([]Value, len(s.bytes))
		for i, b := range s.bytes {
			elems[i] = it.Heap.NewChar(b)
		}
		return it.Heap.ListFromSlice(elems), nil
	})
	def("list->string", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		elems, err := sliceFromList(args[0], "list->string")
		if err != nil {
			return nil, err
		}
		buf := make([]byte, len(elems))
		for i, e := range elems {
			c, err := asChar("list->string", e)
			if err != nil {
				return nil, err
			}
			buf[i] = c
		}
		return it.Heap.NewStringBytes(buf, false), nil
	})
	def("string-copy", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string-copy", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewString(string(s.bytes), false), nil
	})
	def("string-fill!", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string-fill!", args[0])
		if err != nil {
			return nil, err
		}
		if s.readOnly {
			return nil, readOnlyErr("string-fill!")
		}
		c, err := asChar("string-fill!", args[1])
		if err != nil {
			return nil, err
		}
		for i := range s.bytes {
			s.bytes[i] = c
		}
		return it.Heap.EmptyList(), nil
	})
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func strCmpFn(name string, ci bool, cmp func(a, b string) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		strs := make([]string, len(args))
		for i, a := range args {
			s, err := asString(name, a)
			if err != nil {
				return nil, err
			}
			if ci {
				buf := make([]byte, len(s.bytes))
				for j, b := range s.bytes {
					buf[j] = toLowerByte(b)
				}
				strs[i] = string(buf)
			} else {
				strs[i] = string(s.bytes)
			}
		}
		for i := 0; i+1 < len(strs); i++ {
			if !cmp(strs[i], strs[i+1]) {
				return it.Heap.Bool(false), nil
			}
		}
		return it.Heap.Bool(true), nil
	}
}
