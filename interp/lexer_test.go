package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjkrause/goscheme/interp"
)

func TestTokenizeKinds(t *testing.T) {
	toks, err := interp.Tokenize("<test>", `(foo "bar\"baz" #\a 3.14 #t . 'x`)
	require.NoError(t, err)

	want := []interp.TokKind{
		interp.TokLParen,
		interp.TokIdent,
		interp.TokString,
		interp.TokChar,
		interp.TokNumber,
		interp.TokBool,
		interp.TokDot,
		interp.TokQuote,
		interp.TokIdent,
		interp.TokEOF,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		require.Equalf(t, k, toks[i].Kind, "token %d (%q)", i, toks[i].Text)
	}
}

func TestTokenizeMarksAdvanceByLine(t *testing.T) {
	toks, err := interp.Tokenize("f.scm", "foo\nbar")
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Mark.Line)
	require.Equal(t, 2, toks[1].Mark.Line)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := interp.Tokenize("<test>", `"a\nb\tc\\d\"e"`)
	require.NoError(t, err)
	require.Equal(t, "a\nb\tc\\d\"e", toks[0].Text)
}

func TestTokenizeDanglingString(t *testing.T) {
	_, err := interp.Tokenize("<test>", `"unterminated`)
	require.Error(t, err)
}
