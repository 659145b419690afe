// Command interp is the batch/REPL driver for the Scheme interpreter in
// package interp (R5RS §6).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jpvetterli/args"
	"golang.org/x/sync/errgroup"

	"github.com/mjkrause/goscheme/internal/rtlog"
	"github.com/mjkrause/goscheme/interp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var files []string
	var debugMemory, help bool

	a := args.NewParser(nil)
	a.Doc(
		"Usage: interp [debug-memory] [help] [FILE...]",
		"A tree-walking R5RS-subset Scheme interpreter.",
		"",
		"Parameters:")
	a.Def("", &files).Aka("file").Doc("Scheme source files to evaluate; with none, starts a REPL")
	a.Def("debug-memory", &debugMemory).Opt().Doc("collect garbage before every allocation, not just at the threshold")
	a.Def("help", &help).Aka("-h").Opt().Doc("print usage and exit")

	if err := a.Parse(strings.Join(argv, " ")); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if help {
		a.PrintDoc(stdout, "interp")
		return 0
	}

	logger := rtlog.New(nil)
	if debugMemory {
		logger = rtlog.New(stderr)
	}
	it := interp.New(interp.Options{
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
		DebugMemory: debugMemory,
		Logf:        logger.Leveledf("gc"),
	})
	defer it.Close()

	if len(files) == 0 {
		return runREPL(it, stdout, stderr)
	}
	return runBatch(it, files, stderr)
}

// runBatch pre-reads every file concurrently (pure I/O, no interpreter
// state touched until the sequential eval pass below), then evaluates each
// in argument order, per R5RS §6: "errors are written to standard
// error and evaluation proceeds to the next file". Exit status is
// non-zero if any file failed to open.
func runBatch(it *interp.Interpreter, files []string, stderr io.Writer) int {
	sources := make([]string, len(files))
	readErrs := make([]error, len(files))

	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				readErrs[i] = err
				return nil
			}
			sources[i] = string(data)
			return nil
		})
	}
	_ = g.Wait() // the goroutines themselves never return an error

	status := 0
	for i, path := range files {
		if readErrs[i] != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, readErrs[i])
			status = 1
			continue
		}
		if _, err := it.Eval(path, sources[i]); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			status = 1
		}
	}
	return status
}

// runREPL implements the interactive mode of R5RS §6: prompt "> ",
// line-buffered input, multi-line forms accumulated across reads until a
// complete top-level datum closes. chzyer/readline supplies the prompt,
// line editing and cross-line history.
func runREPL(it *interp.Interpreter, stdout, stderr io.Writer) int {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer rl.Close()

	var pending strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending.Len() == 0 {
				continue
			}
			pending.Reset()
			rl.SetPrompt("> ")
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		pending.WriteString(line)
		pending.WriteByte('\n')

		v, evalErr := it.Eval("<stdin>", pending.String())
		switch {
		case evalErr == nil:
			fmt.Fprintln(stdout, interp.Print(v))
			pending.Reset()
			rl.SetPrompt("> ")
		case isIncompleteForm(evalErr):
			rl.SetPrompt("  ")
		default:
			fmt.Fprintln(stderr, evalErr)
			pending.Reset()
			rl.SetPrompt("> ")
		}
	}
}

// isIncompleteForm reports whether err is the parser's "more input needed"
// signal (a dangling open list/vector) rather than a genuine syntax error,
// so the REPL knows to keep reading instead of reporting failure.
func isIncompleteForm(err error) bool {
	return strings.Contains(err.Error(), "dangling open")
}
