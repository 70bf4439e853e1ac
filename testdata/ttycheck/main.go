// Package main provides a runner that reports whether its stdout is a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	_, _ = io.ReadAll(os.Stdin)
	fmt.Fprintf(os.Stdout, "stdout terminal: %t\nsecond line\n", term.IsTerminal(int(os.Stdout.Fd())))
}
