// Command bitvec exercises bit vectors from the shell: bitwise arithmetic on
// binary strings and a toroidal Game of Life built on them.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
