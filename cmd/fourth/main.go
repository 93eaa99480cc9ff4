// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The fourth command parses, formats and compares naive local and UTC
// datetimes, and interprets Starlark scripts that use the fourth module.
// With no subcommand it executes the program on stdin, or starts a
// read-eval-print loop (REPL) when stdin is a terminal.
package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata" // --zone accepts IANA names on hosts without a zone database
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func doMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newApp(stdin, stdout, stderr).rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintf(stderr, "fourth: %v\n", err)
		}
		return 1
	}
	return 0
}
