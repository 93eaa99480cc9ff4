// Package repl provides a read/eval/print loop for fourth scripts.
//
// It supports readline-style command editing, tab completion of
// predeclared names, and interrupts through Control-C.
//
// If an input line can be parsed as an expression,
// the REPL parses and evaluates it and prints its result.
// Otherwise the REPL reads lines until a blank line,
// then tries again to parse the multi-line input as an
// expression. If the input still cannot be parsed as an expression,
// the REPL parses and executes it as a file (a list of statements),
// for side effects.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"github.com/chzyer/readline"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// A LineReader supplies input lines. *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Options configures a REPL. The zero value is usable.
type Options struct {
	Prompt             string // default ">>> "
	ContinuationPrompt string // default "... "
	HistoryFile        string // no history is kept when empty

	// Completions are offered by tab completion, typically the
	// predeclared names.
	Completions []string

	Stdout io.Writer // default os.Stdout
	Stderr io.Writer // default os.Stderr
}

func (o Options) withDefaults() Options {
	if o.Prompt == "" {
		o.Prompt = ">>> "
	}
	if o.ContinuationPrompt == "" {
		o.ContinuationPrompt = "... "
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// REPL executes a read, eval, print loop on the terminal.
//
// Before evaluating each expression, it sets the Starlark thread local
// variable named "context" to a context.Context that is cancelled by a
// SIGINT (Control-C). Client-supplied global functions may use this
// context to make long-running operations interruptable.
func REPL(thread *starlark.Thread, globals starlark.StringDict, opts Options) error {
	opts = opts.withDefaults()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       opts.Prompt,
		HistoryFile:  opts.HistoryFile,
		AutoComplete: completer(opts.Completions),
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return Loop(rl, thread, globals, opts, interrupted)
}

func completer(names []string) readline.AutoCompleter {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	items := make([]readline.PrefixCompleterInterface, len(sorted))
	for i, name := range sorted {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}

// Loop reads items from rl until it reports io.EOF. Each signal received
// on interrupts cancels the context of the item being evaluated.
func Loop(rl LineReader, thread *starlark.Thread, globals starlark.StringDict, opts Options, interrupts <-chan os.Signal) error {
	opts = opts.withDefaults()
	for {
		err := rep(rl, thread, globals, opts, interrupts)
		switch {
		case err == nil:
		case errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(opts.Stdout, err)
		case errors.Is(err, io.EOF):
			fmt.Fprintln(opts.Stdout)
			return nil
		default:
			return err
		}
	}
}

// rep reads, evaluates, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt or io.EOF)
// only if reading failed. Starlark errors are printed.
func rep(rl LineReader, thread *starlark.Thread, globals starlark.StringDict, opts Options, interrupts <-chan os.Signal) error {
	// Each item gets its own context,
	// which is cancelled by a SIGINT.
	//
	// Note: during Readline calls, Control-C causes Readline to return
	// ErrInterrupt but does not generate a SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupts:
			cancel()
		case <-ctx.Done():
		}
	}()

	thread.SetLocal("context", ctx)

	var readErr error

	// readLine returns EOF, ErrInterrupt, or a line including "\n".
	rl.SetPrompt(opts.Prompt)
	readLine := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt(opts.ContinuationPrompt)
		if err != nil {
			readErr = err
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	// parse
	f, err := syntax.ParseCompoundStmt("<stdin>", readLine)
	if err != nil {
		if readErr != nil {
			return readErr
		}
		PrintError(opts.Stderr, err)
		return nil
	}

	// Treat load bindings as global in the REPL.
	// TODO(adonovan): not safe wrt concurrent interpreters.
	defer func(prev bool) { resolve.LoadBindsGlobally = prev }(resolve.LoadBindsGlobally)
	resolve.LoadBindsGlobally = true

	if expr := soleExpr(f); expr != nil {
		// eval
		v, err := starlark.EvalExpr(thread, expr, globals)
		if err != nil {
			PrintError(opts.Stderr, err)
			return nil
		}

		// print
		if v != starlark.None {
			fmt.Fprintln(opts.Stdout, v)
		}
	} else if err := starlark.ExecREPLChunk(f, thread, globals); err != nil {
		PrintError(opts.Stderr, err)
		return nil
	}

	return nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints the error to w,
// or its backtrace if it is a Starlark evaluation error.
func PrintError(w io.Writer, err error) {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		fmt.Fprintln(w, evalErr.Backtrace())
	} else {
		fmt.Fprintln(w, err)
	}
}

// MakeLoad returns a simple sequential implementation of module loading
// suitable for use in the REPL. Loaded files see predeclared.
// Each function returned by MakeLoad accesses a distinct private cache.
func MakeLoad(predeclared starlark.StringDict) func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	type entry struct {
		globals starlark.StringDict
		err     error
	}

	var cache = make(map[string]*entry)

	return func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
		e, ok := cache[module]
		if e == nil {
			if ok {
				// request for package whose loading is in progress
				return nil, fmt.Errorf("cycle in load graph")
			}

			// Add a placeholder to indicate "load in progress".
			cache[module] = nil

			// Load it.
			thread := &starlark.Thread{Name: "exec " + module, Load: thread.Load}
			globals, err := starlark.ExecFile(thread, module, nil, predeclared)
			e = &entry{globals, err}

			// Update the cache.
			cache[module] = e
		}
		return e.globals, e.err
	}
}
