package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lox "github.com/loxlang/loxgo/lox"
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
)

var (
	parseExpr string
	parseTree bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Lox source and print the expression",
	Long: `Parses Lox source into an expression tree.

By default the parsed expression is printed back as source text.
With --tree an indented node dump is printed instead.

Examples:
  loxgo parse program.lox
  loxgo parse --expr "1 + 2 * 3"
  loxgo parse --tree --expr "-(1 + 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "parse an inline expression instead of a file")
	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "print an indented node dump instead of source text")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSource(args, parseExpr)
	if err != nil {
		return err
	}

	reporter := loxdiag.NewConsoleReporter(os.Stderr)
	engine, err := lox.NewEngine(lox.Options{
		Logger:          newLogger(cfg),
		Reporter:        reporter,
		MaxSourceLength: cfg.MaxSourceLength,
	})
	if err != nil {
		return err
	}

	result, err := engine.Parse(source)
	if err != nil {
		// Diagnostics already went to stderr through the reporter
		return &exitError{code: exitDataErr}
	}

	if parseTree {
		fmt.Print(loxast.TreeString(result.Expr))
	} else {
		fmt.Println(loxast.PrintSource(result.Expr))
	}

	return nil
}
