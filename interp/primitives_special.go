package interp

// registerSpecialForms defines every special form in R5RS §4.6: each is
// an ordinary Primitive with special set, so the evaluator's identity check
// in evalApplication is all that distinguishes it from a procedure call.
// elseVal and arrowVal are the specific primitives bound to "else" and "=>"
// in the same environment; cond/case compare against them by identity
// (env.isBoundTo), never by symbol name, per R5RS §9's design note.
func registerSpecialForms(h *Heap, def definer, elseVal, arrowVal Value) {
	def("quote", true, 1, 1, quoteForm)
	def("if", true, 2, 3, ifForm)
	def("set!", true, 2, 2, setForm)
	def("define", true, 2, 2, defineForm)
	def("lambda", true, 2, -1, lambdaForm)
	def("begin", true, 0, -1, beginForm)
	def("and", true, 0, -1, andForm)
	def("or", true, 0, -1, orForm)
	def("let", true, 1, -1, letForm)
	def("let*", true, 1, -1, letStarForm)
	def("letrec", true, 1, -1, letrecForm)
	def("delay", true, 1, 1, delayForm)

	def("cond", true, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return condForm(it, env, args, elseVal, arrowVal)
	})
	def("case", true, 1, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return caseForm(it, env, args, elseVal)
	})

	for _, name := range []string{
		"do", "quasiquote", "unquote", "unquote-splicing",
		"let-syntax", "letrec-syntax", "syntax-rules", "define-syntax",
		"call/cc", "values", "call-with-values", "dynamic-wind",
	} {
		n := name
		def(n, true, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
			return nil, notImplemented(n)
		})
	}
}

func quoteForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	return args[0], nil
}

func ifForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	test, err := Eval(it, args[0], env)
	if err != nil {
		return nil, err
	}
	if IsTruthy(test) {
		return Eval(it, args[1], env)
	}
	if len(args) == 3 {
		return Eval(it, args[2], env)
	}
	return it.Heap.EmptyList(), nil
}

func setForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	sym, ok := args[0].(*symbolValue)
	if !ok {
		return nil, malformedForm("set!", "first argument must be a symbol")
	}
	val, err := Eval(it, args[1], env)
	if err != nil {
		return nil, err
	}
	if !env.set(sym, val) {
		return nil, unboundVariable(sym.name)
	}
	return it.Heap.EmptyList(), nil
}

func defineForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	sym, ok := args[0].(*symbolValue)
	if !ok {
		if _, isPair := args[0].(*pairValue); isPair {
			return nil, malformedForm("define", "procedure-definition sugar (define (f x) ...) is not supported")
		}
		return nil, malformedForm("define", "first argument must be a symbol")
	}
	val, err := Eval(it, args[1], env)
	if err != nil {
		return nil, err
	}
	if lam, ok := val.(*lambdaValue); ok && lam.name == "" {
		lam.name = sym.name
	}
	env.define(sym, val)
	return it.Heap.EmptyList(), nil
}

func lambdaForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	params, rest, err := parseFormals(args[0])
	if err != nil {
		return nil, err
	}
	return it.Heap.NewLambda(params, rest, args[1:], env), nil
}

func parseFormals(formals Value) ([]*symbolValue, *symbolValue, error) {
	switch t := formals.(type) {
	case *emptyListValue:
		return nil, nil, nil
	case *symbolValue:
		return nil, t, nil
	case *pairValue:
		var params []*symbolValue
		var cur Value = t
		for {
			p, ok := cur.(*pairValue)
			if !ok {
				break
			}
			sym, ok2 := p.car.(*symbolValue)
			if !ok2 {
				return nil, nil, malformedForm("lambda", "formal parameter must be a symbol")
			}
			params = append(params, sym)
			cur = p.cdr
		}
		switch rt := cur.(type) {
		case *emptyListValue:
			return params, nil, nil
		case *symbolValue:
			return params, rt, nil
		default:
			return nil, nil, malformedForm("lambda", "improper formals list")
		}
	default:
		return nil, nil, malformedForm("lambda", "formals must be a list or a symbol")
	}
}

func beginForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	return evalBodySeq(it, args, env)
}

func evalBodySeq(it *Interpreter, forms []Value, env *Env) (Value, error) {
	var result Value = it.Heap.EmptyList()
	for _, f := range forms {
		v, err := Eval(it, f, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func andForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	var result Value = it.Heap.Bool(true)
	for _, e := range args {
		v, err := Eval(it, e, env)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func orForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	for _, e := range args {
		v, err := Eval(it, e, env)
		if err != nil {
			return nil, err
		}
		if IsTruthy(v) {
			return v, nil
		}
	}
	return it.Heap.Bool(false), nil
}

// bindingPair pulls (var val) out of one let-family binding form.
func bindingPair(form string, b Value) (*symbolValue, Value, error) {
	elems, err := listToSlice(b)
	if err != nil || len(elems) != 2 {
		return nil, nil, malformedForm(form, "each binding must be (variable value)")
	}
	sym, ok := elems[0].(*symbolValue)
	if !ok {
		return nil, nil, malformedForm(form, "binding variable must be a symbol")
	}
	return sym, elems[1], nil
}

func letForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	bindings, err := listToSlice(args[0])
	if err != nil {
		return nil, malformedForm("let", "bindings must be a list")
	}
	newEnv := it.Heap.NewEnv(env)
	lock := it.Heap.Hold(newEnv)
	defer lock.Release()
	for _, b := range bindings {
		sym, expr, err := bindingPair("let", b)
		if err != nil {
			return nil, err
		}
		val, err := Eval(it, expr, env)
		if err != nil {
			return nil, err
		}
		newEnv.define(sym, val)
	}
	return evalBodySeq(it, args[1:], newEnv)
}

func letStarForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	bindings, err := listToSlice(args[0])
	if err != nil {
		return nil, malformedForm("let*", "bindings must be a list")
	}
	newEnv := it.Heap.NewEnv(env)
	lock := it.Heap.Hold(newEnv)
	defer lock.Release()
	for _, b := range bindings {
		sym, expr, err := bindingPair("let*", b)
		if err != nil {
			return nil, err
		}
		val, err := Eval(it, expr, newEnv)
		if err != nil {
			return nil, err
		}
		newEnv.define(sym, val)
	}
	return evalBodySeq(it, args[1:], newEnv)
}

func letrecForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	bindings, err := listToSlice(args[0])
	if err != nil {
		return nil, malformedForm("letrec", "bindings must be a list")
	}
	newEnv := it.Heap.NewEnv(env)
	lock := it.Heap.Hold(newEnv)
	defer lock.Release()

	syms := make([]*symbolValue, len(bindings))
	exprs := make([]Value, len(bindings))
	for i, b := range bindings {
		sym, expr, err := bindingPair("letrec", b)
		if err != nil {
			return nil, err
		}
		syms[i], exprs[i] = sym, expr
		newEnv.define(sym, it.Heap.EmptyList())
	}
	for i, sym := range syms {
		val, err := Eval(it, exprs[i], newEnv)
		if err != nil {
			return nil, err
		}
		newEnv.define(sym, val)
	}
	return evalBodySeq(it, args[1:], newEnv)
}

func delayForm(it *Interpreter, env *Env, args []Value) (Value, error) {
	return it.Heap.NewPromise(args[0], env), nil
}

func condForm(it *Interpreter, env *Env, args []Value, elseVal, arrowVal Value) (Value, error) {
	for _, clause := range args {
		forms, err := listToSlice(clause)
		if err != nil || len(forms) == 0 {
			return nil, malformedForm("cond", "each clause must be a non-empty list")
		}
		if sym, ok := forms[0].(*symbolValue); ok && env.isBoundTo(sym, elseVal) {
			return evalBodySeq(it, forms[1:], env)
		}
		test, err := Eval(it, forms[0], env)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(test) {
			continue
		}
		if len(forms) == 1 {
			return test, nil
		}
		if len(forms) == 3 {
			if sym, ok := forms[1].(*symbolValue); ok && env.isBoundTo(sym, arrowVal) {
				proc, err := Eval(it, forms[2], env)
				if err != nil {
					return nil, err
				}
				return Apply(it, proc, []Value{test})
			}
		}
		return evalBodySeq(it, forms[1:], env)
	}
	return it.Heap.EmptyList(), nil
}

func caseForm(it *Interpreter, env *Env, args []Value, elseVal Value) (Value, error) {
	key, err := Eval(it, args[0], env)
	if err != nil {
		return nil, err
	}
	for _, clause := range args[1:] {
		forms, err := listToSlice(clause)
		if err != nil || len(forms) == 0 {
			return nil, malformedForm("case", "each clause must be a non-empty list")
		}
		if sym, ok := forms[0].(*symbolValue); ok && env.isBoundTo(sym, elseVal) {
			return evalBodySeq(it, forms[1:], env)
		}
		datums, err := listToSlice(forms[0])
		if err != nil {
			return nil, malformedForm("case", "clause datum list must be a list")
		}
		for _, d := range datums {
			if Eqv(d, key) {
				return evalBodySeq(it, forms[1:], env)
			}
		}
	}
	return it.Heap.EmptyList(), nil
}
