package interp

import (
	"fmt"
	"math"
	"strings"
)

// parsedNumber is the intermediate result of parsing a numeric lexeme,
// before it is wrapped into a Heap-allocated Value.
type parsedNumber struct {
	isFloat bool
	i       int64
	f       float64
}

func digitVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// scanDigits consumes a run of digits (and '#' placeholders, which count as
// zero and mark the result inexact) valid in the given radix, per R5RS
// §4.2.
func scanDigits(s string, radix int) (val int64, hashSeen bool, n int) {
	for n < len(s) {
		b := s[n]
		if b == '#' {
			hashSeen = true
			val = val*int64(radix) + 0
			n++
			continue
		}
		d, ok := digitVal(b)
		if !ok || d >= radix {
			break
		}
		val = val*int64(radix) + int64(d)
		n++
	}
	return
}

// parseNumberToken parses a lexer-produced number lexeme per R5RS §4.2's
// grammar. Complex forms are recognized only well enough to be rejected,
// matching R5RS's "recognized as tokens but rejected by the
// number-conversion routine".
func parseNumberToken(lexeme string) (parsedNumber, error) {
	s := lexeme
	radix := 10
	var exactness byte
	for len(s) >= 2 && s[0] == '#' {
		switch s[1] {
		case 'b', 'B':
			radix = 2
		case 'o', 'O':
			radix = 8
		case 'd', 'D':
			radix = 10
		case 'x', 'X':
			radix = 16
		case 'e', 'E':
			exactness = 'e'
		case 'i', 'I':
			exactness = 'i'
		default:
			return parsedNumber{}, fmt.Errorf("invalid number prefix in %q", lexeme)
		}
		s = s[2:]
	}
	if s == "" {
		return parsedNumber{}, fmt.Errorf("empty numeric literal")
	}
	if strings.ContainsRune(s, '@') || s[len(s)-1] == 'i' || s[len(s)-1] == 'I' {
		return parsedNumber{}, fmt.Errorf("complex numbers are not supported: %q", lexeme)
	}

	neg := false
	i := 0
	if s[0] == '+' {
		i = 1
	} else if s[0] == '-' {
		neg = true
		i = 1
	}
	rest := s[i:]
	if rest == "" {
		return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
	}

	if radix != 10 {
		return parseNonDecimal(lexeme, rest, radix, neg, exactness)
	}
	return parseDecimal(lexeme, rest, neg, exactness)
}

func parseNonDecimal(lexeme, rest string, radix int, neg bool, exactness byte) (parsedNumber, error) {
	intPart, hashSeen, n := scanDigits(rest, radix)
	if n == 0 {
		return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
	}
	rest = rest[n:]
	val := intPart
	isFloat := hashSeen

	if strings.HasPrefix(rest, "/") {
		denPart, dHash, dn := scanDigits(rest[1:], radix)
		if dn == 0 || denPart == 0 {
			return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
		}
		rest = rest[1+dn:]
		if rest != "" {
			return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
		}
		if !isFloat && !dHash && val%denPart == 0 {
			val /= denPart
		} else {
			f := float64(val) / float64(denPart)
			if neg {
				f = -f
			}
			return parsedNumber{isFloat: true, f: f}, nil
		}
	}
	if rest != "" {
		return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
	}
	if neg {
		val = -val
	}
	if isFloat || exactness == 'i' {
		return parsedNumber{isFloat: true, f: float64(val)}, nil
	}
	return parsedNumber{i: val}, nil
}

func parseDecimal(lexeme, rest string, neg bool, exactness byte) (parsedNumber, error) {
	intDigits, intHash, n := scanDigits(rest, 10)
	rest = rest[n:]
	hasIntDigits := n > 0
	isFloat := intHash
	hasDot := false
	var fracDigits int64
	fracScale := 1.0

	if strings.HasPrefix(rest, ".") {
		hasDot = true
		isFloat = true
		rest = rest[1:]
		fd, _, fn := scanDigits(rest, 10)
		fracDigits = fd
		for k := 0; k < fn; k++ {
			fracScale *= 10
		}
		rest = rest[fn:]
	}
	if !hasIntDigits && !hasDot {
		return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
	}

	expMul := 1.0
	if len(rest) > 0 {
		switch rest[0] {
		case 'e', 'E', 's', 'S', 'f', 'F', 'd', 'D', 'l', 'L':
			rest = rest[1:]
			expNeg := false
			if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
				expNeg = rest[0] == '-'
				rest = rest[1:]
			}
			ed, _, en := scanDigits(rest, 10)
			if en == 0 {
				return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
			}
			rest = rest[en:]
			exp := ed
			if expNeg {
				exp = -exp
			}
			expMul = math.Pow(10, float64(exp))
			isFloat = true
		}
	}

	if strings.HasPrefix(rest, "/") && !hasDot {
		denPart, dHash, dn := scanDigits(rest[1:], 10)
		if dn == 0 || denPart == 0 {
			return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
		}
		rest = rest[1+dn:]
		if rest != "" {
			return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
		}
		if !isFloat && !dHash && intDigits%denPart == 0 {
			val := intDigits / denPart
			if neg {
				val = -val
			}
			if exactness == 'i' {
				return parsedNumber{isFloat: true, f: float64(val)}, nil
			}
			return parsedNumber{i: val}, nil
		}
		f := float64(intDigits) / float64(denPart)
		if neg {
			f = -f
		}
		return parsedNumber{isFloat: true, f: f}, nil
	}

	if rest != "" {
		return parsedNumber{}, fmt.Errorf("invalid numeric literal: %q", lexeme)
	}

	if isFloat {
		f := float64(intDigits) + float64(fracDigits)/fracScale
		f *= expMul
		if neg {
			f = -f
		}
		if exactness == 'e' {
			return parsedNumber{i: int64(f)}, nil
		}
		return parsedNumber{isFloat: true, f: f}, nil
	}

	val := intDigits
	if neg {
		val = -val
	}
	if exactness == 'i' {
		return parsedNumber{isFloat: true, f: float64(val)}, nil
	}
	return parsedNumber{i: val}, nil
}

// ParseNumber converts a number lexeme into a Heap Value, for the parser's
// literal-conversion step (R5RS §4.3).
func ParseNumber(h *Heap, lexeme string) (Value, error) {
	p, err := parseNumberToken(lexeme)
	if err != nil {
		return nil, err
	}
	if p.isFloat {
		return h.NewFloat(p.f), nil
	}
	return h.NewInt(p.i), nil
}
