package interp

// registerEqualityPrimitives defines eq?/eqv?/equal? as thin wrappers
// around the identity/structural equality layering in value.go, per
// R5RS §3/§4.7.
func registerEqualityPrimitives(def definer) {
	def("eq?", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(Eq(args[0], args[1])), nil
	})
	def("eqv?", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(Eqv(args[0], args[1])), nil
	})
	def("equal?", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(Equal(args[0], args[1])), nil
	})
}
