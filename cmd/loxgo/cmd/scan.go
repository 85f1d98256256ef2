package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	lox "github.com/loxlang/loxgo/lox"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
)

var scanExpr string

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize Lox source and print the token sequence",
	Long: `Scans Lox source and prints one token per line.

Reads from the given file, from --expr, or from stdin.

Examples:
  loxgo scan program.lox
  loxgo scan --expr "1 + 2 * 3"
  echo "(1 + 2)" | loxgo scan`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanExpr, "expr", "e", "", "scan an inline expression instead of a file")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSource(args, scanExpr)
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

	tokens, err := engine.Scan(source)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	for _, token := range tokens {
		fmt.Printf("%4d  %s\n", token.Line, token.String())
	}

	if reporter.HadError() {
		return &exitError{code: exitDataErr}
	}

	return nil
}

// readSource resolves the source text from an inline expression, a file
// argument, or stdin, in that order
func readSource(args []string, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if len(args) > 0 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading source file: %w", err)
		}
		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(content), nil
}
