package interp

// registerCharPrimitives defines the character library of R5RS §4.7:
// the type predicate, ordered comparisons (case-sensitive and
// case-insensitive), classifiers, case conversion, and the
// char<->integer conversions (range-checked on the inverse direction).
func registerCharPrimitives(h *Heap, def definer) {
	def("char?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*charValue)
		return it.Heap.Bool(ok), nil
	})

	def("char=?", false, 2, -1, charCmpFn("char=?", false, func(a, b byte) bool { return a == b }))
	def("char<?", false, 2, -1, charCmpFn("char<?", false, func(a, b byte) bool { return a < b }))
	def("char>?", false, 2, -1, charCmpFn("char>?", false, func(a, b byte) bool { return a > b }))
	def("char<=?", false, 2, -1, charCmpFn("char<=?", false, func(a, b byte) bool { return a <= b }))
	def("char>=?", false, 2, -1, charCmpFn("char>=?", false, func(a, b byte) bool { return a >= b }))
	def("char-ci=?", false, 2, -1, charCmpFn("char-ci=?", true, func(a, b byte) bool { return a == b }))
	def("char-ci<?", false, 2, -1, charCmpFn("char-ci<?", true, func(a, b byte) bool { return a < b }))
	def("char-ci>?", false, 2, -1, charCmpFn("char-ci>?", true, func(a, b byte) bool { return a > b }))
	def("char-ci<=?", false, 2, -1, charCmpFn("char-ci<=?", true, func(a, b byte) bool { return a <= b }))
	def("char-ci>=?", false, 2, -1, charCmpFn("char-ci>=?", true, func(a, b byte) bool { return a >= b }))

	def("char-alphabetic?", false, 1, 1, charClassFn(func(b byte) bool {
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}))
	def("char-numeric?", false, 1, 1, charClassFn(func(b byte) bool { return b >= '0' && b <= '9' }))
	def("char-whitespace?", false, 1, 1, charClassFn(func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
	}))
	def("char-upper-case?", false, 1, 1, charClassFn(func(b byte) bool { return b >= 'A' && b <= 'Z' }))
	def("char-lower-case?", false, 1, 1, charClassFn(func(b byte) bool { return b >= 'a' && b <= 'z' }))

	def("char-upcase", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		c, err := asChar("char-upcase", args[0])
		if err != nil {
			return nil, err
		}
		if c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		return it.Heap.NewChar(c), nil
	})
	def("char-downcase", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		c, err := asChar("char-downcase", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewChar(toLowerByte(c)), nil
	})

	def("char->integer", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		c, err := asChar("char->integer", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewInt(int64(c)), nil
	})
	def("integer->char", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		n, err := asInt("integer->char", args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 || n > 255 {
			return nil, outOfRange("integer->char", args[0])
		}
		return it.Heap.NewChar(byte(n)), nil
	})
}

func charCmpFn(name string, ci bool, cmp func(a, b byte) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		bs := make([]byte, len(args))
		for i, a := range args {
			c, err := asChar(name, a)
			if err != nil {
				return nil, err
			}
			if ci {
				c = toLowerByte(c)
			}
			bs[i] = c
		}
		for i := 0; i+1 < len(bs); i++ {
			if !cmp(bs[i], bs[i+1]) {
				return it.Heap.Bool(false), nil
			}
		}
		return it.Heap.Bool(true), nil
	}
}

func charClassFn(pred func(byte) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		c, err := asChar("char-classify", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(pred(c)), nil
	}
}
