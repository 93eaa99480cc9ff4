package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"github.com/lincolnpuzey/fourth"
	fourthlib "github.com/lincolnpuzey/fourth/lib/fourth"
	"github.com/lincolnpuzey/fourth/repl"
)

// predeclared is the environment of scripts: the fourth module, plus its
// members at top level.
func predeclared() starlark.StringDict {
	env := starlark.StringDict{fourthlib.ModuleName: fourthlib.Module}
	for name, v := range fourthlib.Module.Members {
		env[name] = v
	}
	return env
}

// newThread returns a thread whose clock is fourth.NowFunc, so that
// scripts and subcommands agree on the current time.
func newThread(name string, env starlark.StringDict) *starlark.Thread {
	thread := &starlark.Thread{Name: name, Load: repl.MakeLoad(env)}
	fourthlib.SetNow(thread, func() (time.Time, error) { return fourth.NowFunc(), nil })
	return thread
}

func (a *app) runCmd() *cobra.Command {
	var (
		prog    string
		showenv bool
	)
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Execute a Starlark script",
		Long: `Execute a Starlark script from FILE, from -c, or from stdin.

The fourth module is predeclared both as "fourth" and member by member.
With no FILE or -c and a terminal on stdin, run starts the REPL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execScript(cmd, prog, args, showenv)
		},
	}
	cmd.Flags().StringVarP(&prog, "command", "c", "", "execute program `prog`")
	cmd.Flags().BoolVar(&showenv, "showenv", false, "on success, print final global environment")
	return cmd
}

// execScript runs prog, the file named by args, or stdin; with none of
// them and a terminal on stdin it starts the REPL.
func (a *app) execScript(cmd *cobra.Command, prog string, args []string, showenv bool) error {
	env := predeclared()
	var (
		filename string
		src      interface{}
	)
	switch {
	case prog != "" && len(args) > 0:
		return fmt.Errorf("want a file name or -c, not both")
	case prog != "":
		filename, src = "cmdline", prog
	case len(args) == 1:
		filename = args[0]
	case isTerminal(a.stdin):
		return a.repl(env)
	default:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return err
		}
		filename, src = "<stdin>", data
	}

	a.log.Debug().Str("file", filename).Msg("executing")
	thread := newThread("exec "+filename, env)
	thread.Print = func(_ *starlark.Thread, msg string) {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	globals, err := starlark.ExecFile(thread, filename, src, env)
	if err != nil {
		repl.PrintError(a.stderr, err)
		return errReported
	}

	if showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(a.stderr, "%s = %s\n", name, globals[name])
			}
		}
	}
	return nil
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl(predeclared())
		},
	}
}

func (a *app) repl(env starlark.StringDict) error {
	names := env.Keys()
	for _, name := range fourthlib.Module.Members.Keys() {
		names = append(names, fourthlib.ModuleName+"."+name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.stdout, "Welcome to fourth")
	thread := newThread("REPL", env)
	globals := make(starlark.StringDict)
	for name, v := range env {
		globals[name] = v
	}
	return repl.REPL(thread, globals, repl.Options{
		HistoryFile: a.cfg.History,
		Completions: names,
		Stdout:      a.stdout,
		Stderr:      a.stderr,
	})
}
