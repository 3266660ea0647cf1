package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/errors"
	"github.com/colecarley/bird-lang-sub000/internal/interp"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/colecarley/bird-lang-sub000/internal/semantic"
	"github.com/colecarley/bird-lang-sub000/internal/typecheck"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

const replLine = "----------------------------------------"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Bird session",
	Long: `Start a read-eval-print loop: each line is lexed, parsed, checked, and
run against session state that persists across lines, so a var or fn
declared on one line is visible on the next.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		newRepl().start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// repl holds the session state that must persist across input lines: one
// analyzer, checker, and interpreter apiece, reused line after line the
// same way Run would reuse them across an entire program.
type repl struct {
	interpreter *interp.Interpreter
}

func newRepl() *repl {
	return &repl{}
}

func (r *repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", replLine)
	cyanColor.Fprintf(w, "%s\n", "Bird interactive session")
	cyanColor.Fprintf(w, "%s\n", "Type Bird statements and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", replLine)
}

func (r *repl) start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New("bird> ")
	if err != nil {
		fmt.Fprintf(w, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	r.interpreter = interp.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

// evalLine runs a single line of input through the full pipeline, keeping
// the session's interpreter alive across calls while giving each line a
// fresh analyzer and checker (their scopes hold only program-order state,
// which a single line can supply in full).
func (r *repl) evalLine(w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[runtime error] %v\n", rec)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if lexErr := p.LexError(); lexErr != nil {
		redColor.Fprintf(w, "%s\n", lexErr.Error())
		return
	}
	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			redColor.Fprintf(w, "line %d, character %d: %s\n", perr.Pos.Line, perr.Pos.Column, perr.Message)
		}
		return
	}

	sink := errors.NewSink(line)
	semantic.New(sink).Analyze(program)
	if sink.HasErrors() {
		redColor.Fprintf(w, "%s", sink.Format())
		return
	}

	checkSink := errors.NewSink(line)
	typecheck.New(checkSink).Check(program)
	if checkSink.HasErrors() {
		redColor.Fprintf(w, "%s", checkSink.Format())
		return
	}

	if err := r.interpreter.Run(program); err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	if isBareExpr(program) {
		yellowColor.Fprintln(w, "ok")
	}
}

func isBareExpr(program *ast.Program) bool {
	if len(program.Statements) != 1 {
		return false
	}
	_, ok := program.Statements[0].(*ast.ExprStmt)
	return ok
}
