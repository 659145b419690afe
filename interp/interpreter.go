package interp

import "io"

// Interpreter holds the global resources and state for one Scheme runtime:
// its Heap and the root Env, following yaegi's New(Options) *Interpreter
// construction shape (SPEC_FULL.md §1).
type Interpreter struct {
	Heap   *Heap
	Global *Env

	opts       Options
	globalLock Lock
}

// New constructs an Interpreter with a fresh Heap and a root environment
// pre-populated with every primitive and special form (R5RS §3's
// "Environment" invariant).
func New(opts Options) *Interpreter {
	opts = opts.resolve()
	h := NewHeap(opts.MemThreshold, opts.DebugMemory)
	if opts.Logf != nil {
		logf := opts.Logf
		h.onCollect = func(live int) { logf("gc: collect complete, %d live object(s)", live) }
	}
	it := &Interpreter{Heap: h, opts: opts}
	it.Global = newGlobalEnv(h)
	it.globalLock = h.Hold(it.Global)
	return it
}

// Stdout, Stderr, Stdin expose the configured streams to the primitive
// library (there are no port primitives per R5RS's non-goals, but
// `write`/`display`-style output and the REPL both need a place to print).
func (it *Interpreter) Stdout() io.Writer { return it.opts.Stdout }
func (it *Interpreter) Stderr() io.Writer { return it.opts.Stderr }
func (it *Interpreter) Stdin() io.Reader  { return it.opts.Stdin }

// Eval parses and evaluates every top-level form in src in order,
// returning the value of the last one (or the empty list if src contained
// none). Each parsed form is locked individually for the brief span
// between being parsed and being evaluated, per R5RS §5's rooting
// discipline; evaluation stops at the first error, per R5RS §6's batch
// semantics ("errors ... proceed to the next file").
func (it *Interpreter) Eval(path, src string) (Value, error) {
	p, err := NewParser(it.Heap, path, src)
	if err != nil {
		return nil, err
	}
	var last Value = it.Heap.EmptyList()
	for {
		datum, perr := p.ParseTopLevel()
		if perr == io.EOF {
			return last, nil
		}
		if perr != nil {
			return nil, perr
		}
		lock := it.Heap.Hold(datum)
		v, eerr := Eval(it, datum, it.Global)
		lock.Release()
		if eerr != nil {
			return nil, eerr
		}
		last = v
	}
}

// EvalForm evaluates a single already-parsed datum against the global
// environment, for callers (e.g. the REPL) that parse one top-level form
// at a time themselves.
func (it *Interpreter) EvalForm(datum Value) (Value, error) {
	lock := it.Heap.Hold(datum)
	defer lock.Release()
	return Eval(it, datum, it.Global)
}

// Close purges the Heap. The Interpreter must not be used afterward.
func (it *Interpreter) Close() {
	it.globalLock.Release()
	it.Heap.Purge()
}
