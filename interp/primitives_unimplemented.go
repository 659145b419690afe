package interp

// registerUnimplemented binds every primitive name R5RS §4.7 says must
// deliberately raise "not implemented" — ordinary procedures, as opposed to
// the syntactic keywords handled in registerSpecialForms (call/cc, values,
// call-with-values and dynamic-wind are registered there instead, since
// real Scheme implementations give them special evaluation order; they are
// not duplicated here).
func registerUnimplemented(def definer) {
	for _, name := range []string{
		"gcd", "lcm", "numerator", "denominator", "rationalize",
		"make-rectangular", "make-polar", "real-part", "imag-part", "magnitude", "angle",
		"display", "write", "newline", "read",
		"eval",
	} {
		n := name
		def(n, false, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
			return nil, notImplemented(n)
		})
	}
}
