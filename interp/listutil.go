package interp

// ListFromSlice builds a proper list from elems, right-folding with Cons.
// Each intermediate pair is locked until the next Cons call produces its
// successor, so a GC threshold crossed mid-build cannot reclaim it; the
// final pair is unlocked on return; callers that keep the result alive
// across further allocation must Hold it themselves.
func (h *Heap) ListFromSlice(elems []Value) Value {
	return h.prependToTail(elems, h.EmptyList())
}

// prependToTail right-folds elems onto an existing tail (e.g. append's
// final argument, reused rather than copied per R5RS §4.7), with the
// same incremental locking discipline as ListFromSlice.
func (h *Heap) prependToTail(elems []Value, tail Value) Value {
	result := tail
	lock := h.Hold(result)
	for i := len(elems) - 1; i >= 0; i-- {
		next := h.Cons(elems[i], result)
		lock.Release()
		result = next
		lock = h.Hold(result)
	}
	lock.Release()
	return result
}
