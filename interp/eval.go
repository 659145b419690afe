package interp

// Eval implements the evaluator core from R5RS §4.5: self-evaluation,
// symbol lookup, and application (with special forms recognized by
// identity rather than by name, per R5RS §4.6/§9).
func Eval(it *Interpreter, expr Value, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *symbolValue:
		v, ok := env.lookup(e)
		if !ok {
			return nil, unboundVariable(e.name)
		}
		return v, nil
	case *pairValue:
		return evalApplication(it, e, env)
	default:
		return expr, nil
	}
}

func evalApplication(it *Interpreter, e *pairValue, env *Env) (Value, error) {
	if sym, ok := e.car.(*symbolValue); ok {
		bound, ok2 := env.lookup(sym)
		if !ok2 {
			return nil, unboundVariable(sym.name)
		}
		if prim, ok3 := bound.(*primitiveValue); ok3 && prim.special {
			rawArgs, err := listToSlice(e.cdr)
			if err != nil {
				return nil, err
			}
			if err := checkArity(prim.name, len(rawArgs), prim.minArgs, prim.maxArgs); err != nil {
				return nil, err
			}
			return prim.fn(it, env, rawArgs)
		}
		return evalCallWithHead(it, bound, e.cdr, env)
	}

	head, err := Eval(it, e.car, env)
	if err != nil {
		return nil, err
	}
	return evalCallWithHead(it, head, e.cdr, env)
}

func evalCallWithHead(it *Interpreter, head Value, rawArgs Value, env *Env) (Value, error) {
	headLock := it.Heap.Hold(head)
	defer headLock.Release()

	vals, locks, err := evalArgs(it, rawArgs, env)
	defer func() {
		for _, l := range locks {
			l.Release()
		}
	}()
	if err != nil {
		return nil, err
	}
	return Apply(it, head, vals)
}

// evalArgs evaluates each element of a raw (unevaluated) argument list
// strictly left-to-right, per R5RS §4.5/§5, locking every intermediate
// result before evaluating the next argument so a GC threshold crossed
// mid-evaluation cannot reclaim an already-computed argument.
func evalArgs(it *Interpreter, rawArgs Value, env *Env) ([]Value, []Lock, error) {
	var vals []Value
	var locks []Lock
	cur := rawArgs
	for {
		p, ok := cur.(*pairValue)
		if !ok {
			break
		}
		v, err := Eval(it, p.car, env)
		if err != nil {
			return vals, locks, err
		}
		locks = append(locks, it.Heap.Hold(v))
		vals = append(vals, v)
		cur = p.cdr
	}
	if _, isNil := cur.(*emptyListValue); !isNil {
		return vals, locks, malformedForm("application", "improper argument list")
	}
	return vals, locks, nil
}

// Apply invokes proc (a Primitive or Lambda) with already-evaluated args.
func Apply(it *Interpreter, proc Value, args []Value) (Value, error) {
	switch p := proc.(type) {
	case *primitiveValue:
		if err := checkArity(p.name, len(args), p.minArgs, p.maxArgs); err != nil {
			return nil, err
		}
		return p.fn(it, nil, args)
	case *lambdaValue:
		return applyLambda(it, p, args)
	default:
		return nil, notAProcedure(proc)
	}
}

func applyLambda(it *Interpreter, lam *lambdaValue, args []Value) (Value, error) {
	nreq := len(lam.params)
	if len(args) < nreq {
		return nil, wrongArity(procName(lam))
	}
	if lam.rest == nil && len(args) > nreq {
		return nil, wrongArity(procName(lam))
	}

	newEnv := it.Heap.NewEnv(lam.env)
	envLock := it.Heap.Hold(newEnv)
	defer envLock.Release()

	for i, sym := range lam.params {
		newEnv.define(sym, args[i])
	}
	if lam.rest != nil {
		newEnv.define(lam.rest, it.Heap.ListFromSlice(args[nreq:]))
	}

	var result Value = it.Heap.EmptyList()
	var err error
	for _, b := range lam.body {
		result, err = Eval(it, b, newEnv)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func procName(lam *lambdaValue) string {
	if lam.name != "" {
		return lam.name
	}
	return "#<procedure>"
}

func checkArity(name string, n, min, max int) error {
	if n < min || (max >= 0 && n > max) {
		return wrongArity(name)
	}
	return nil
}

// listToSlice converts a proper-list Value into a Go slice, used to hand
// special forms their raw, unevaluated sub-forms.
func listToSlice(v Value) ([]Value, error) {
	var out []Value
	cur := v
	for {
		switch t := cur.(type) {
		case *emptyListValue:
			return out, nil
		case *pairValue:
			out = append(out, t.car)
			cur = t.cdr
		default:
			return nil, malformedForm("special form", "improper list of sub-forms")
		}
	}
}

// sliceFromList is the counterpart of listToSlice for primitives that need
// to walk a Scheme list argument as a Go slice (e.g. apply's final
// argument); an improper list is reported as a wrong-type argument.
func sliceFromList(v Value, proc string) ([]Value, error) {
	var out []Value
	cur := v
	for {
		switch t := cur.(type) {
		case *emptyListValue:
			return out, nil
		case *pairValue:
			out = append(out, t.car)
			cur = t.cdr
		default:
			return nil, wrongType(proc, v)
		}
	}
}
