// Command junctor finds maximum-a-posteriori decomposable graphical
// models, samples from their posterior over junction trees, or
// enumerates them exhaustively, given a DMST subset-score file.
package main

import (
	"fmt"
	"os"

	"github.com/jwkangas/junctor/internal/cli"
)

func main() {
	if err := cli.Run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
