// Package main provides a runner that fails with a message on stderr.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	_, _ = io.ReadAll(os.Stdin)
	fmt.Fprintln(os.Stderr, "boom")
	os.Exit(2)
}
