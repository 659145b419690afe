package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjkrause/goscheme/interp"
)

func TestGCSoundness(t *testing.T) {
	h := interp.NewHeap(0, false)

	garbage := h.Cons(h.NewInt(1), h.NewInt(2))
	_ = garbage // never locked, never reachable from a root

	keep := h.NewInt(99)
	lock := h.Hold(keep)

	h.Collect()
	require.Equal(t, 1, h.LiveCount(), "only the locked value should survive collection")

	lock.Release()
	h.Collect()
	require.Equal(t, 0, h.LiveCount())
}

func TestGCKeepsReachableFromRoot(t *testing.T) {
	h := interp.NewHeap(0, false)
	tail := h.Cons(h.NewInt(2), h.EmptyList())
	head := h.Cons(h.NewInt(1), tail)
	lock := h.Hold(head)
	defer lock.Release()

	h.Collect()
	require.Equal(t, 4, h.LiveCount(), "both pairs and both ints survive via the locked head")
}

func TestEqvEqualReflexivity(t *testing.T) {
	h := interp.NewHeap(0, false)
	values := []interp.Value{
		h.EmptyList(),
		h.Bool(true),
		h.NewInt(7),
		h.NewFloat(3.5),
		h.NewChar('x'),
		h.NewString("hello", false),
		h.Intern("sym"),
		h.Cons(h.NewInt(1), h.NewInt(2)),
		h.NewVector([]interp.Value{h.NewInt(1), h.NewInt(2)}, false),
	}
	for _, v := range values {
		require.True(t, interp.Eqv(v, v))
		require.True(t, interp.Equal(v, v))
	}
}

func TestListPredicateOnCycle(t *testing.T) {
	it := interp.New(interp.Options{})
	t.Cleanup(it.Close)

	v, err := it.Eval("<test>", "(define p (list 1 2 3)) (set-cdr! (cddr p) p) (list? p)")
	require.NoError(t, err)
	require.Equal(t, "#f", interp.Print(v), "a self-referential pair chain must not be reported as a list")
}
