package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjkrause/goscheme/interp"
)

func evalString(t *testing.T, src string) interp.Value {
	t.Helper()
	it := interp.New(interp.Options{})
	t.Cleanup(it.Close)
	v, err := it.Eval("<test>", src)
	require.NoError(t, err)
	return v
}

// TestEndToEndScenarios runs concrete input -> printed-result scenarios
// covering lambda application, rest parameters, if/cond/case, arithmetic,
// quoting, and closures.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"lambda identity", "((lambda (x) x) 42)", "42"},
		{"rest parameter", "((lambda (x y . z) z) 3 4 5 6)", "(5 6)"},
		{"if else branch", "(if #f 42 43)", "43"},
		{"if no else, true", "(if #t 42)", "42"},
		{"if no else, false", "(if #f 42)", "()"},
		{"cond arrow clause", "(cond (#f 3) ((+ 4 3) => (lambda (x) (+ x 3))) (else 4))", "10"},
		{"case composite", "(case (* 2 3) ((2 3 5 7) 'prime) ((1 4 6 8 9) 'composite))", "composite"},
		{"sum", "(+ 22 12 3 5)", "42"},
		{"product", "(* 21 -2 -1)", "42"},
		{"difference", "(- 84 20 22)", "42"},
		{"exact division", "(/ 504 -6 -2)", "42"},
		{"quoted datum not evaluated", "'(+ 1 2)", "(+ 1 2)"},
		{"nested closures", "(((lambda () (lambda (x) (+ 5 x)))) 7)", "12"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := evalString(t, c.src)
			require.Equal(t, c.want, interp.Print(v))
		})
	}
}

func TestDefineAndSet(t *testing.T) {
	v := evalString(t, "(define foo 42) foo")
	require.Equal(t, "42", interp.Print(v))

	v = evalString(t, "(define foo 42) (set! foo 7) foo")
	require.Equal(t, "7", interp.Print(v))
}

func TestSetUnboundVariable(t *testing.T) {
	it := interp.New(interp.Options{})
	t.Cleanup(it.Close)
	_, err := it.Eval("<test>", "(set! never-defined 1)")
	require.Error(t, err)
}

func TestLambdaArity(t *testing.T) {
	it := interp.New(interp.Options{})
	t.Cleanup(it.Close)

	_, err := it.Eval("<test>", "(define f (lambda (x y) x)) (f 1)")
	require.Error(t, err, "too few arguments must raise")

	_, err = it.Eval("<test>", "(define f (lambda (x y) x)) (f 1 2 3)")
	require.Error(t, err, "too many arguments with no rest param must raise")

	it2 := interp.New(interp.Options{})
	t.Cleanup(it2.Close)
	v, err := it2.Eval("<test>", "(define f (lambda (x . rest) rest)) (f 1 2 3 4)")
	require.NoError(t, err)
	require.Equal(t, "(2 3 4)", interp.Print(v))
}

func TestLetFamily(t *testing.T) {
	v := evalString(t, "(let ((x 1) (y 2)) (+ x y))")
	require.Equal(t, "3", interp.Print(v))

	v = evalString(t, "(let* ((x 1) (y (+ x 1))) (+ x y))")
	require.Equal(t, "3", interp.Print(v))

	v = evalString(t, `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	                          (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	                    (even? 10))`)
	require.Equal(t, "#t", interp.Print(v))
}

func TestShadowingSpecialFormByIdentity(t *testing.T) {
	// Rebinding "if" locally to an ordinary procedure disables its special
	// evaluation order; the arguments are now evaluated like any call.
	it := interp.New(interp.Options{})
	t.Cleanup(it.Close)
	v, err := it.Eval("<test>", "((lambda (if) (if 1 2 3)) (lambda (a b c) b))")
	require.NoError(t, err)
	require.Equal(t, "2", interp.Print(v))
}

func TestAndOr(t *testing.T) {
	require.Equal(t, "#t", interp.Print(evalString(t, "(and)")))
	require.Equal(t, "#f", interp.Print(evalString(t, "(and 1 #f 2)")))
	require.Equal(t, "3", interp.Print(evalString(t, "(and 1 2 3)")))
	require.Equal(t, "#f", interp.Print(evalString(t, "(or)")))
	require.Equal(t, "1", interp.Print(evalString(t, "(or 1 2)")))
	require.Equal(t, "2", interp.Print(evalString(t, "(or #f 2)")))
}

func TestDelayForce(t *testing.T) {
	v := evalString(t, "(force (delay (+ 1 2)))")
	require.Equal(t, "3", interp.Print(v))
}
