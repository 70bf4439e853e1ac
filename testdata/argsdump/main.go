// Package main provides a runner that prints its arguments and stderr noise.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	_, _ = io.ReadAll(os.Stdin)
	fmt.Fprintln(os.Stderr, "stderr line")
	fmt.Fprintln(os.Stdout, strings.Join(os.Args[1:], " "))
}
