package interp

import (
	"fmt"
	"io"
)

// Parser builds a datum tree from a token stream, per R5RS §4.3.
//
// Every Value the parser allocates is held under a root Lock for the
// duration of parsing one top-level datum (see pending/track below), so a
// GC threshold crossed mid-parse cannot reclaim a partially built tree; the
// locks are released once the top-level datum is complete, same discipline
// as R5RS's "lock handle" design note. Callers of ParseTopLevel must
// acquire their own lock on the result before performing any further
// allocation if they intend to keep it alive past that point.
type Parser struct {
	lx      *Lexer
	h       *Heap
	tok     Token
	pending []Lock
}

// NewParser constructs a Parser reading src, attributing diagnostics to path.
func NewParser(h *Heap, path, src string) (*Parser, error) {
	p := &Parser{lx: NewLexer(path, src), h: h}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) track(v Value) Value {
	p.pending = append(p.pending, p.h.Hold(v))
	return v
}

func (p *Parser) cons(car, cdr Value) Value { return p.track(p.h.Cons(car, cdr)) }

// AtEOF reports whether the parser has consumed all input.
func (p *Parser) AtEOF() bool { return p.tok.Kind == TokEOF }

// ParseTopLevel parses exactly one top-level datum, returning io.EOF if
// there is none left.
func (p *Parser) ParseTopLevel() (Value, error) {
	for _, l := range p.pending {
		l.Release()
	}
	p.pending = p.pending[:0]

	v, err := p.parseDatum()
	for _, l := range p.pending {
		l.Release()
	}
	return v, err
}

func (p *Parser) parseDatum() (Value, error) {
	tok := p.tok
	switch tok.Kind {
	case TokEOF:
		return nil, io.EOF
	case TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseListTail(tok.Mark)
	case TokVecOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseVector(tok.Mark)
	case TokRParen:
		return nil, &SchemeError{Category: CategorySyntax, Mark: tok.Mark, Message: "unexpected )"}
	case TokDot:
		return nil, &SchemeError{Category: CategorySyntax, Mark: tok.Mark, Message: "unexpected ."}
	case TokQuote:
		return p.parseReaderMacro(tok.Mark, "quote")
	case TokQuasiquote:
		return p.parseReaderMacro(tok.Mark, "quasiquote")
	case TokUnquote:
		return p.parseReaderMacro(tok.Mark, "unquote")
	case TokUnquoteSplicing:
		return p.parseReaderMacro(tok.Mark, "unquote-splicing")
	case TokIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.track(p.h.Intern(tok.Text)), nil
	case TokBool:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.h.Bool(tok.Text == "t"), nil
	case TokNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, perr := ParseNumber(p.h, tok.Text)
		if perr != nil {
			return nil, &SchemeError{Category: CategorySyntax, Mark: tok.Mark,
				Message: fmt.Sprintf("malformed numeric literal %q: %v", tok.Text, perr)}
		}
		return p.track(v), nil
	case TokChar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.track(p.h.NewChar(charFromLexeme(tok.Text))), nil
	case TokString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.track(p.h.NewString(tok.Text, false)), nil
	}
	return nil, &SchemeError{Category: CategorySyntax, Mark: tok.Mark, Message: "unexpected token"}
}

func charFromLexeme(text string) byte {
	if len(text) == 1 {
		return text[0]
	}
	if b, ok := charNames[text]; ok {
		return b
	}
	return text[0]
}

func (p *Parser) parseReaderMacro(mark Mark, name string) (Value, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.Kind == TokEOF {
		return nil, &SchemeError{Category: CategorySyntax, Mark: mark,
			Message: fmt.Sprintf("expression missing after %s", name)}
	}
	d, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	sym := p.track(p.h.Intern(name))
	return p.cons(sym, p.cons(d, p.h.EmptyList())), nil
}

func (p *Parser) parseListTail(openMark Mark) (Value, error) {
	var elems []Value
	for {
		switch p.tok.Kind {
		case TokEOF:
			return nil, &SchemeError{Category: CategorySyntax, Mark: openMark, Message: "dangling open list"}
		case TokRParen:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.buildList(elems, p.h.EmptyList()), nil
		case TokDot:
			dotMark := p.tok.Mark
			if len(elems) == 0 {
				return nil, &SchemeError{Category: CategorySyntax, Mark: dotMark, Message: "expression missing before ."}
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.Kind == TokRParen || p.tok.Kind == TokEOF {
				return nil, &SchemeError{Category: CategorySyntax, Mark: dotMark, Message: "expression missing after ."}
			}
			tail, err := p.parseDatum()
			if err != nil {
				return nil, err
			}
			if p.tok.Kind != TokRParen {
				return nil, &SchemeError{Category: CategorySyntax, Mark: p.tok.Mark, Message: "expected ) after dotted tail"}
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.buildList(elems, tail), nil
		default:
			d, err := p.parseDatum()
			if err != nil {
				return nil, err
			}
			elems = append(elems, d)
		}
	}
}

func (p *Parser) buildList(elems []Value, tail Value) Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = p.cons(elems[i], result)
	}
	return result
}

func (p *Parser) parseVector(openMark Mark) (Value, error) {
	var elems []Value
	for {
		switch p.tok.Kind {
		case TokEOF:
			return nil, &SchemeError{Category: CategorySyntax, Mark: openMark, Message: "dangling open vector"}
		case TokRParen:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.track(p.h.NewVector(elems, true)), nil
		default:
			d, err := p.parseDatum()
			if err != nil {
				return nil, err
			}
			elems = append(elems, d)
		}
	}
}

// ParseAll reads every top-level datum in src. All returned data is kept
// root-locked for the whole call (so collecting while parsing form N cannot
// reclaim forms 1..N-1); the locks are released together just before
// return, so a caller that needs to keep any of them alive across further
// allocation must Hold them again immediately.
func ParseAll(h *Heap, path, src string) ([]Value, error) {
	p, err := NewParser(h, path, src)
	if err != nil {
		return nil, err
	}
	var out []Value
	var locks []Lock
	defer func() {
		for _, l := range locks {
			l.Release()
		}
	}()
	for {
		v, err := p.ParseTopLevel()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		locks = append(locks, h.Hold(v))
		out = append(out, v)
	}
}
