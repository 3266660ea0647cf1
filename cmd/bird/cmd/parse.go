package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/colecarley/bird-lang-sub000/internal/ast"
	"github.com/colecarley/bird-lang-sub000/internal/lexer"
	"github.com/colecarley/bird-lang-sub000/internal/parser"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Bird program and print its AST",
	Long: `Parse Bird source code and print the resulting Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse the program
text given as the argument on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse program text given on the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	} else if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if reportParseErrors(p, input) {
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	fmt.Println("Abstract Syntax Tree:")
	fmt.Println("=====================")
	for _, stmt := range program.Statements {
		dumpStatement(stmt, 0)
	}

	return nil
}

func indentOf(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "  "
	}
	return s
}

func dumpStatement(stmt ast.Statement, depth int) {
	pad := indentOf(depth)
	switch s := stmt.(type) {
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(s.Stmts))
		for _, inner := range s.Stmts {
			dumpStatement(inner, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		fmt.Printf("%s  Cond: %s\n", pad, s.Cond.String())
		dumpStatement(s.Then, depth+1)
		if s.Else != nil {
			fmt.Printf("%sElse\n", pad)
			dumpStatement(s.Else, depth+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		fmt.Printf("%s  Cond: %s\n", pad, s.Cond.String())
		dumpStatement(s.Body, depth+1)
	case *ast.For:
		fmt.Printf("%sFor\n", pad)
		if s.Init != nil {
			fmt.Printf("%s  Init: %s\n", pad, s.Init.String())
		}
		if s.Cond != nil {
			fmt.Printf("%s  Cond: %s\n", pad, s.Cond.String())
		}
		if s.Step != nil {
			fmt.Printf("%s  Step: %s\n", pad, s.Step.String())
		}
		dumpStatement(s.Body, depth+1)
	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s := %s\n", pad, s.Name.Value, s.Initializer.String())
	case *ast.ConstDecl:
		fmt.Printf("%sConstDecl %s := %s\n", pad, s.Name.Value, s.Initializer.String())
	case *ast.TypeDecl:
		fmt.Printf("%sTypeDecl %s\n", pad, s.Name.Value)
	case *ast.Func:
		fmt.Printf("%sFunc %s\n", pad, s.Name.Value)
		dumpStatement(s.Body, depth+1)
	case *ast.Return:
		if s.Value != nil {
			fmt.Printf("%sReturn %s\n", pad, s.Value.String())
		} else {
			fmt.Printf("%sReturn\n", pad)
		}
	case *ast.Break:
		fmt.Printf("%sBreak\n", pad)
	case *ast.Continue:
		fmt.Printf("%sContinue\n", pad)
	case *ast.PrintStmt:
		fmt.Printf("%sPrint %s\n", pad, s.String())
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt %s\n", pad, s.Expr.String())
	default:
		fmt.Printf("%s%T: %s\n", pad, stmt, stmt.String())
	}
}
