// Command mazegen prints a perfect maze generated by lvmaze/maze.
//
// Usage:
//
//	mazegen [--width 9] [--height 7] [--seed N] [--plain] [--verify]
//
// Without --seed the clock seeds the generator and the seed used is printed,
// so any maze can be reproduced later.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}
