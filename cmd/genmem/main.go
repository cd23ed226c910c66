// genmem demonstrates generational references.
//
// Usage:
//
//	genmem demo [--example tree,graph,mutation,variant] [--tree file.jsonc] [-o transcript.txt]
//	genmem repl [--capacity n]
//
// Both commands accept --log-level and --log-format.
package main

import (
	"os"

	"github.com/TESTMECS/generatitonal-mem/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdout, os.Stderr, os.Args))
}
