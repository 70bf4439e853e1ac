// Package main provides a runner that always produces a padded summary.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if _, err := io.ReadAll(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprint(os.Stdout, "  Summary OK  \n")
}
