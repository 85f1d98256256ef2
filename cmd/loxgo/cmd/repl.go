package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	loxlog "github.com/loxlang/loxgo/core/log"
	lox "github.com/loxlang/loxgo/lox"
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
	loxstringx "github.com/loxlang/loxgo/utils/stringx"
)

var (
	replShowTokens bool
	replShowTree   bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long: `Starts an interactive session that scans and parses each input
line and echoes the parsed expression.

An error on one line never ends the session. Exit with Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replShowTokens, "tokens", false, "echo the token sequence for each line")
	replCmd.Flags().BoolVar(&replShowTree, "tree", false, "echo the expression tree for each line")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	showTokens := replShowTokens || cfg.REPL.ShowTokens
	showTree := replShowTree || cfg.REPL.ShowTree

	sessionID := uuid.NewString()
	logger := newLogger(cfg).WithFields(loxlog.Fields{
		"component": "lox-repl",
		"sessionId": sessionID,
	})

	reporter := loxdiag.NewConsoleReporter(os.Stderr)
	engine, err := lox.NewEngine(lox.Options{
		Logger:          logger,
		Reporter:        reporter,
		MaxSourceLength: cfg.MaxSourceLength,
	})
	if err != nil {
		return err
	}

	prompt := loxstringx.FirstNonBlank(cfg.REPL.Prompt, "> ")

	fmt.Println(RenderBanner(fmt.Sprintf("loxgo v%s", Version)))
	fmt.Println(RenderMuted("interactive session, exit with Ctrl-D"))

	logger.Info("repl session started")

	scanner := bufio.NewScanner(os.Stdin)
	lines := 0

	for {
		fmt.Print(RenderPrompt(prompt))

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if loxstringx.IsBlank(line) {
			continue
		}
		lines++

		// One bad line must not end the session
		reporter.Reset()

		result, err := engine.Parse(line)
		if err != nil {
			continue
		}

		if showTokens {
			for _, token := range result.Tokens {
				fmt.Println(RenderMuted(token.String()))
			}
		}

		if showTree {
			fmt.Print(RenderMuted(loxast.TreeString(result.Expr)))
		}

		fmt.Println(RenderResult(loxast.PrintSource(result.Expr)))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	logger.Info("repl session ended", loxlog.Fields{"lines": lines})

	return nil
}
