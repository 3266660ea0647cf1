package cmd

import (
	"fmt"
	"os"

	"github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/interp"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/colecarley/bird-lang-sub000/internal/semantic"
	"github.com/colecarley/bird-lang-sub000/internal/typecheck"
	"github.com/spf13/cobra"
)

var (
	evalExpr      string
	dumpAST       bool
	skipTypeCheck bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Bird program",
	Long: `Lex, parse, analyze, type-check, and interpret a Bird program.

Examples:
  # Run a script file
  bird run program.bird

  # Evaluate an inline program
  bird run -e "print 1 + 2;"

  # Run with the parsed AST dumped first
  bird run --dump-ast program.bird`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&skipTypeCheck, "skip-type-check", false, "skip semantic analysis and type checking")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Running %s\n", filename)
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if reportParseErrors(p, input) {
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if dumpAST {
		fmt.Println(program.String())
		fmt.Println()
	}

	if !skipTypeCheck {
		sink := errors.NewSink(input)
		analyzer := semantic.New(sink)
		analyzer.Analyze(program)
		if sink.HasErrors() {
			fmt.Fprint(os.Stderr, sink.Format())
			return fmt.Errorf("semantic analysis failed with %d error(s)", sink.Count())
		}

		checkSink := errors.NewSink(input)
		checker := typecheck.New(checkSink)
		checker.Check(program)
		if checkSink.HasErrors() {
			fmt.Fprint(os.Stderr, checkSink.Format())
			return fmt.Errorf("type checking failed with %d error(s)", checkSink.Count())
		}
	} else if verbose {
		fmt.Fprintln(os.Stderr, "Type checking skipped")
	}

	interpreter := interp.New(os.Stdout)
	if err := interpreter.Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", err)
		return fmt.Errorf("execution failed")
	}

	return nil
}

// readSource resolves the program text and a display name for diagnostics,
// either from the -e flag or a single file argument.
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// reportParseErrors prints any lex or parse failures and reports whether
// the caller should abort.
func reportParseErrors(p *parser.Parser, input string) bool {
	if lexErr := p.LexError(); lexErr != nil {
		sink := errors.NewSink(input)
		sink.Add(lexErr.Pos, "%s", lexErr.Error())
		fmt.Fprint(os.Stderr, sink.Format())
		return true
	}
	if len(p.Errors()) == 0 {
		return false
	}
	sink := errors.NewSink(input)
	for _, perr := range p.Errors() {
		sink.Add(perr.Pos, "%s", perr.Message)
	}
	fmt.Fprint(os.Stderr, sink.Format())
	return true
}
