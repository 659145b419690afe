package interp

// definer registers one primitive or special form in the global
// environment under construction.
type definer func(name string, special bool, minArgs, maxArgs int, fn PrimFunc)

// newGlobalEnv builds the root environment: every primitive procedure and
// special form, plus the reserved identifiers else/=> (R5RS §3/§4.6).
func newGlobalEnv(h *Heap) *Env {
	env := h.NewEnv(nil)
	env.global = true
	envLock := h.Hold(env)
	defer envLock.Release()

	def := definer(func(name string, special bool, minArgs, maxArgs int, fn PrimFunc) {
		sym := h.Intern(name).(*symbolValue)
		symLock := h.Hold(sym)
		env.define(sym, h.NewPrimitive(name, special, minArgs, maxArgs, fn))
		symLock.Release()
	})

	// else/=> are reserved identifiers recognized by identity inside
	// cond/case (R5RS §4.6); bound here so ordinary use outside those
	// forms still resolves to something (and fails informatively).
	elseVal := h.NewPrimitive("else", true, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return nil, malformedForm("else", "not valid outside cond/case")
	})
	arrowVal := h.NewPrimitive("=>", true, 0, -1, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		return nil, malformedForm("=>", "not valid outside cond")
	})
	env.define(h.Intern("else").(*symbolValue), elseVal)
	env.define(h.Intern("=>").(*symbolValue), arrowVal)

	registerSpecialForms(h, def, elseVal, arrowVal)
	registerArithmetic(def)
	registerPairPrimitives(h, def)
	registerEqualityPrimitives(def)
	registerStringPrimitives(h, def)
	registerCharPrimitives(h, def)
	registerVectorPrimitives(h, def)
	registerHigherOrderPrimitives(h, def)
	registerNumberStringPrimitives(h, def)
	registerUnimplemented(def)

	return env
}

// --- shared argument-coercion helpers used across the primitive library ---

func asInt(proc string, v Value) (int64, error) {
	switch t := v.(type) {
	case *intValue:
		return t.n, nil
	case *floatValue:
		return int64(t.f), nil
	}
	return 0, wrongType(proc, v)
}

func asIndex(proc string, v Value) (int, error) {
	n, err := asInt(proc, v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, outOfRange(proc, v)
	}
	return int(n), nil
}

func numericParts(proc string, v Value) (f float64, exact bool, err error) {
	switch t := v.(type) {
	case *intValue:
		return float64(t.n), true, nil
	case *floatValue:
		return t.f, false, nil
	}
	return 0, false, wrongType(proc, v)
}

func asFloat(proc string, v Value) (float64, error) {
	f, _, err := numericParts(proc, v)
	return f, err
}

func isNumber(v Value) bool {
	switch v.(type) {
	case *intValue, *floatValue:
		return true
	}
	return false
}

func asString(proc string, v Value) (*stringValue, error) {
	s, ok := v.(*stringValue)
	if !ok {
		return nil, wrongType(proc, v)
	}
	return s, nil
}

func asSymbol(proc string, v Value) (*symbolValue, error) {
	s, ok := v.(*symbolValue)
	if !ok {
		return nil, wrongType(proc, v)
	}
	return s, nil
}

func asChar(proc string, v Value) (byte, error) {
	c, ok := v.(*charValue)
	if !ok {
		return 0, wrongType(proc, v)
	}
	return c.r, nil
}

func asPair(proc string, v Value) (*pairValue, error) {
	p, ok := v.(*pairValue)
	if !ok {
		return nil, wrongType(proc, v)
	}
	return p, nil
}

func asVector(proc string, v Value) (*vectorValue, error) {
	vec, ok := v.(*vectorValue)
	if !ok {
		return nil, wrongType(proc, v)
	}
	return vec, nil
}

func asLambdaOrPrimitive(v Value) bool {
	switch v.(type) {
	case *lambdaValue, *primitiveValue:
		return true
	}
	return false
}
