// Command bird is the Bird language toolchain: lex, parse, run, and
// compile-to-WebAssembly subcommands over a single cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/colecarley/bird-lang-sub000/cmd/bird/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
