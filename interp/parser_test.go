package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjkrause/goscheme/interp"
)

func TestParseAllRoundTrip(t *testing.T) {
	h := interp.NewHeap(0, false)
	forms, err := interp.ParseAll(h, "<test>", "(1 2 . 3) #(1 2 3) 'x `y ,z ,@w")
	require.NoError(t, err)
	require.Len(t, forms, 6)

	want := []string{
		"(1 2 . 3)",
		"#(1 2 3)",
		"'x",
		"`y",
		",z",
		",@w",
	}
	for i, v := range forms {
		require.Equal(t, want[i], interp.Print(v))
	}
}

func TestParseDanglingListIsDistinguishable(t *testing.T) {
	h := interp.NewHeap(0, false)
	_, err := interp.ParseAll(h, "<test>", "(1 2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "dangling open")
}

func TestRoundTripLexParsePrint(t *testing.T) {
	// Printing a parsed datum and re-parsing it should yield an equal? value.
	h := interp.NewHeap(0, false)
	srcs := []string{
		"(a b (c . d) #(1 2 #t))",
		`"hello world"`,
		"3.5",
		"-7",
		"#\\newline",
	}
	for _, src := range srcs {
		forms1, err := interp.ParseAll(h, "<test>", src)
		require.NoError(t, err)
		require.Len(t, forms1, 1)

		printed := interp.Print(forms1[0])
		forms2, err := interp.ParseAll(h, "<test>", printed)
		require.NoError(t, err)
		require.Len(t, forms2, 1)

		require.True(t, interp.Equal(forms1[0], forms2[0]), "round-trip of %q via %q", src, printed)
	}
}
