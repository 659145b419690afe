package interp

import "strconv"

// registerNumberStringPrimitives defines number->string and string->number,
// per R5RS §4.7.
func registerNumberStringPrimitives(h *Heap, def definer) {
	def("number->string", false, 1, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		radix := 10
		if len(args) == 2 {
			r, err := asInt("number->string", args[1])
			if err != nil {
				return nil, err
			}
			radix = int(r)
		}
		switch radix {
		case 2, 8, 10, 16:
		default:
			return nil, numericDomainErr("number->string", "radix must be 2, 8, 10 or 16")
		}
		switch t := args[0].(type) {
		case *intValue:
			return it.Heap.NewString(strconv.FormatInt(t.n, radix), false), nil
		case *floatValue:
			if radix != 10 {
				return nil, numericDomainErr("number->string", "inexact numbers print only in base 10")
			}
			return it.Heap.NewString(formatFloat(t.f), false), nil
		}
		return nil, wrongType("number->string", args[0])
	})

	def("string->number", false, 1, 2, func(it *Interpreter, env *Env, args []Value) (Value, error) {
		s, err := asString("string->number", args[0])
		if err != nil {
			return nil, err
		}
		lexeme := string(s.bytes)
		if len(args) == 2 {
			r, err := asInt("string->number", args[1])
			if err != nil {
				return nil, err
			}
			switch r {
			case 2:
				lexeme = "#b" + lexeme
			case 8:
				lexeme = "#o" + lexeme
			case 16:
				lexeme = "#x" + lexeme
			case 10:
			default:
				return nil, numericDomainErr("string->number", "radix must be 2, 8, 10 or 16")
			}
		}
		v, perr := ParseNumber(it.Heap, lexeme)
		if perr != nil {
			return it.Heap.Bool(false), nil
		}
		return v, nil
	})
}
