package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	loxconfig "github.com/loxlang/loxgo/core/config"
	loxlog "github.com/loxlang/loxgo/core/log"
)

// Exit codes follow the BSD sysexits convention: 64 for usage errors,
// 65 for malformed input data.
const (
	exitUsage   = 64
	exitDataErr = 65
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "loxgo",
	Short: "loxgo - Lox language frontend",
	Long: `loxgo is a frontend for the Lox language: a scanner and a
recursive descent expression parser with friendly diagnostics.

Commands:
  scan     - Tokenize a source file and print the token sequence
  parse    - Parse a source file and print the expression
  repl     - Start an interactive session
  version  - Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code through cobra's error return
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				printError(ee.err)
			}
			return ee.code
		}
		printError(err)
		return exitUsage
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file if one was given, falling back
// to defaults, and applies the --verbose override
func loadConfig() (*loxconfig.Config, error) {
	cfg := loxconfig.Default()

	if cfgFile != "" {
		loaded, err := loxconfig.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if verbose {
		cfg.Log.Level = loxlog.DevelopmentLevel().String()
	}

	return cfg, nil
}

// newLogger builds the CLI logger from the configuration
func newLogger(cfg *loxconfig.Config) *loxlog.Logger {
	return loxlog.NewWithConfig(loxlog.Config{
		Level:  cfg.LogLevel(),
		Format: cfg.LogFormat(),
		Output: os.Stderr,
		Name:   "loxgo",
	})
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, RenderError(err.Error()))
}
