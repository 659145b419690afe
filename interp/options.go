package interp

import (
	"io"
	"os"
)

// Options configures a new Interpreter, following yaegi's Options/New(..)
// construction shape (SPEC_FULL.md §1).
type Options struct {
	// Stdin, Stdout, Stderr default to os.Stdin/os.Stdout/os.Stderr.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// DebugMemory enables per-allocation collection (R5RS §4.1/§6).
	DebugMemory bool

	// MemThreshold overrides the default allocation-count collection
	// trigger (R5RS §4.1's "default 1000"). Zero means use the default.
	MemThreshold uint

	// Logf, if set, receives one GC-trace line after every collection.
	// Nothing else is logged through it.
	Logf func(mess string, args ...interface{})
}

func (o Options) resolve() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}
