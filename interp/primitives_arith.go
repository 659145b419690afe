package interp

import "math"

// registerArithmetic defines the numeric tower of R5RS §4.7: `+ - * /`,
// the variadic comparisons, numeric predicates, rounding, transcendental
// functions (always double-precision per the spec), integer division, and
// min/max with inexact contagion.
func registerArithmetic(def definer) {
	def("+", false, 0, -1, addFn)
	def("-", false, 1, -1, subFn)
	def("*", false, 0, -1, mulFn)
	def("/", false, 1, -1, divFn)

	def("=", false, 1, -1, cmpFn("=", func(a, b float64) bool { return a == b }))
	def("<", false, 1, -1, cmpFn("<", func(a, b float64) bool { return a < b }))
	def(">", false, 1, -1, cmpFn(">", func(a, b float64) bool { return a > b }))
	def("<=", false, 1, -1, cmpFn("<=", func(a, b float64) bool { return a <= b }))
	def(">=", false, 1, -1, cmpFn(">=", func(a, b float64) bool { return a >= b }))

	def("zero?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		f, _, err := numericParts("zero?", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(f == 0), nil
	})
	def("positive?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		f, _, err := numericParts("positive?", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(f > 0), nil
	})
	def("negative?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		f, _, err := numericParts("negative?", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(f < 0), nil
	})
	def("odd?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		n, err := asInt("odd?", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(n%2 != 0), nil
	})
	def("even?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		n, err := asInt("even?", args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.Bool(n%2 == 0), nil
	})
	def("number?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return it.Heap.Bool(isNumber(args[0])), nil
	})
	def("integer?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		switch t := args[0].(type) {
		case *intValue:
			return it.Heap.Bool(true), nil
		case *floatValue:
			return it.Heap.Bool(t.f == math.Trunc(t.f)), nil
		}
		return it.Heap.Bool(false), nil
	})
	def("exact?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*intValue)
		return it.Heap.Bool(ok), nil
	})
	def("inexact?", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		_, ok := args[0].(*floatValue)
		return it.Heap.Bool(ok), nil
	})

	def("abs", false, 1, 1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		switch t := args[0].(type) {
		case *intValue:
			n := t.n
			if n < 0 {
				n = -n
			}
			return it.Heap.NewInt(n), nil
		case *floatValue:
			return it.Heap.NewFloat(math.Abs(t.f)), nil
		}
		return nil, wrongType("abs", args[0])
	})
	def("floor", false, 1, 1, roundingFn("floor", math.Floor))
	def("ceiling", false, 1, 1, roundingFn("ceiling", math.Ceil))
	def("truncate", false, 1, 1, roundingFn("truncate", math.Trunc))
	def("round", false, 1, 1, roundingFn("round", math.RoundToEven))

	def("sin", false, 1, 1, unaryFloatFn("sin", math.Sin))
	def("cos", false, 1, 1, unaryFloatFn("cos", math.Cos))
	def("tan", false, 1, 1, unaryFloatFn("tan", math.Tan))
	def("asin", false, 1, 1, unaryFloatFn("asin", math.Asin))
	def("acos", false, 1, 1, unaryFloatFn("acos", math.Acos))
	def("exp", false, 1, 1, unaryFloatFn("exp", math.Exp))
	def("log", false, 1, 1, unaryFloatFn("log", math.Log))
	def("sqrt", false, 1, 1, unaryFloatFn("sqrt", math.Sqrt))
	def("atan", false, 1, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		y, err := asFloat("atan", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return it.Heap.NewFloat(math.Atan(y)), nil
		}
		x, err := asFloat("atan", args[1])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewFloat(math.Atan2(y, x)), nil
	})
	def("expt", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		b, err := asFloat("expt", args[0])
		if err != nil {
			return nil, err
		}
		e, err := asFloat("expt", args[1])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewFloat(math.Pow(b, e)), nil
	})

	def("quotient", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		a, err := asInt("quotient", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt("quotient", args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, numericDomainErr("quotient", "division by zero")
		}
		return it.Heap.NewInt(a / b), nil
	})
	def("remainder", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		a, err := asInt("remainder", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt("remainder", args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, numericDomainErr("remainder", "division by zero")
		}
		return it.Heap.NewInt(a % b), nil
	})
	def("modulo", false, 2, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		a, err := asInt("modulo", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt("modulo", args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, numericDomainErr("modulo", "division by zero")
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return it.Heap.NewInt(m), nil
	})

	def("min", false, 1, -1, minMaxFn("min", func(a, b float64) bool { return a < b }))
	def("max", false, 1, -1, minMaxFn("max", func(a, b float64) bool { return a > b }))
}

func numericArgs(proc string, args []Value) ([]float64, bool, error) {
	fs := make([]float64, len(args))
	exact := true
	for i, a := range args {
		f, ex, err := numericParts(proc, a)
		if err != nil {
			return nil, false, err
		}
		fs[i] = f
		if !ex {
			exact = false
		}
	}
	return fs, exact, nil
}

func intArgs(args []Value) ([]int64, bool) {
	ints := make([]int64, len(args))
	for i, a := range args {
		iv, ok := a.(*intValue)
		if !ok {
			return nil, false
		}
		ints[i] = iv.n
	}
	return ints, true
}

func addFn(it *Interpreter, env *Env, args []Value) (Value, error) {
	if ints, ok := intArgs(args); ok {
		var sum int64
		for _, n := range ints {
			sum += n
		}
		return it.Heap.NewInt(sum), nil
	}
	fs, _, err := numericArgs("+", args)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, f := range fs {
		sum += f
	}
	return it.Heap.NewFloat(sum), nil
}

func subFn(it *Interpreter, env *Env, args []Value) (Value, error) {
	if ints, ok := intArgs(args); ok {
		if len(ints) == 1 {
			return it.Heap.NewInt(-ints[0]), nil
		}
		r := ints[0]
		for _, n := range ints[1:] {
			r -= n
		}
		return it.Heap.NewInt(r), nil
	}
	fs, _, err := numericArgs("-", args)
	if err != nil {
		return nil, err
	}
	if len(fs) == 1 {
		return it.Heap.NewFloat(-fs[0]), nil
	}
	r := fs[0]
	for _, f := range fs[1:] {
		r -= f
	}
	return it.Heap.NewFloat(r), nil
}

func mulFn(it *Interpreter, env *Env, args []Value) (Value, error) {
	if ints, ok := intArgs(args); ok {
		var prod int64 = 1
		for _, n := range ints {
			prod *= n
		}
		return it.Heap.NewInt(prod), nil
	}
	fs, _, err := numericArgs("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, f := range fs {
		prod *= f
	}
	return it.Heap.NewFloat(prod), nil
}

// divFn prefers an exact integer result, falling back to float the moment
// the division does not come out even, per R5RS §4.7.
func divFn(it *Interpreter, env *Env, args []Value) (Value, error) {
	if ints, ok := intArgs(args); ok {
		if len(ints) == 1 {
			if ints[0] == 0 {
				return nil, numericDomainErr("/", "division by zero")
			}
			if 1%ints[0] == 0 {
				return it.Heap.NewInt(1 / ints[0]), nil
			}
			return it.Heap.NewFloat(1 / float64(ints[0])), nil
		}
		r := ints[0]
		exact := true
		for _, n := range ints[1:] {
			if n == 0 {
				return nil, numericDomainErr("/", "division by zero")
			}
			if exact && r%n == 0 {
				r /= n
			} else {
				exact = false
				break
			}
		}
		if exact {
			return it.Heap.NewInt(r), nil
		}
	}
	fs, _, err := numericArgs("/", args)
	if err != nil {
		return nil, err
	}
	if len(fs) == 1 {
		if fs[0] == 0 {
			return nil, numericDomainErr("/", "division by zero")
		}
		return it.Heap.NewFloat(1 / fs[0]), nil
	}
	r := fs[0]
	for _, f := range fs[1:] {
		if f == 0 {
			return nil, numericDomainErr("/", "division by zero")
		}
		r /= f
	}
	return it.Heap.NewFloat(r), nil
}

func cmpFn(name string, cmp func(a, b float64) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		fs, _, err := numericArgs(name, args)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(fs); i++ {
			if !cmp(fs[i], fs[i+1]) {
				return it.Heap.Bool(false), nil
			}
		}
		return it.Heap.Bool(true), nil
	}
}

func roundingFn(name string, op func(float64) float64) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		switch t := args[0].(type) {
		case *intValue:
			return t, nil
		case *floatValue:
			return it.Heap.NewFloat(op(t.f)), nil
		}
		return nil, wrongType(name, args[0])
	}
}

func unaryFloatFn(name string, op func(float64) float64) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		f, err := asFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		return it.Heap.NewFloat(op(f)), nil
	}
}

func minMaxFn(name string, better func(a, b float64) bool) PrimFunc {
	return func(it *Interpreter, env *Env, args []Value) (Value, error) {
		fs, exact, err := numericArgs(name, args)
		if err != nil {
			return nil, err
		}
		best := fs[0]
		for _, f := range fs[1:] {
			if better(f, best) {
				best = f
			}
		}
		if exact {
			return it.Heap.NewInt(int64(best)), nil
		}
		return it.Heap.NewFloat(best), nil
	}
}
