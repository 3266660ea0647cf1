package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/colecarley/bird-lang-sub000/internal/codegen"
	"github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/colecarley/bird-lang-sub000/internal/semantic"
	"github.com/colecarley/bird-lang-sub000/internal/typecheck"
	"github.com/spf13/cobra"
)

var (
	outputFile           string
	skipCompileTypeCheck bool
	disassemble          bool
	compileVerbose       bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Lower a Bird program to a WebAssembly module",
	Long: `Compile a Bird program to a standalone WebAssembly module and save it
as a .wasm file. The module imports three host print functions
(print_i32, print_f64, print_str) from a module named "env" and
exports its entry point as "main".

Examples:
  # Compile a script to WebAssembly
  bird compile program.bird

  # Compile with a custom output file
  bird compile program.bird -o out.wasm

  # Compile and print the textual module
  bird compile program.bird --disassemble`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.wasm)")
	compileCmd.Flags().BoolVar(&skipCompileTypeCheck, "skip-type-check", false, "skip semantic analysis and type checking (unsafe)")
	compileCmd.Flags().BoolVar(&disassemble, "disassemble", false, "print the textual module after lowering")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileScript(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if reportParseErrors(p, input) {
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if !skipCompileTypeCheck {
		sink := errors.NewSink(input)
		semantic.New(sink).Analyze(program)
		if sink.HasErrors() {
			fmt.Fprint(os.Stderr, sink.Format())
			return fmt.Errorf("semantic analysis failed with %d error(s)", sink.Count())
		}

		checkSink := errors.NewSink(input)
		typecheck.New(checkSink).Check(program)
		if checkSink.HasErrors() {
			fmt.Fprint(os.Stderr, checkSink.Format())
			return fmt.Errorf("type checking failed with %d error(s)", checkSink.Count())
		}
	}

	mod, err := codegen.Lower(program)
	if err != nil {
		return fmt.Errorf("lowering failed: %w", err)
	}

	if disassemble {
		mod.Disassemble(os.Stderr)
	}

	data := mod.Encode()

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".wasm"
		} else {
			outFile = filename + ".wasm"
		}
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", outFile, len(data))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	return nil
}
