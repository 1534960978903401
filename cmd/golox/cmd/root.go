package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"golox/internal"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "golox - front end for the lox scripting language",
	Long: `golox scans and parses lox expressions and prints the
resulting syntax tree in parenthesized prefix form.

Given a script it parses the file; without arguments it starts an
interactive prompt. Use the tokens subcommand to inspect the raw
token stream.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			repl()
			return
		}
		if !internal.RunSourceWithPrinter(loadSource(args[0]), stdPrinter{}) {
			os.Exit(65)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func loadSource(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logrus.Fatal(err)
	}

	start := time.Now()
	b, err := os.ReadFile(absPath)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"file":    absPath,
		"bytes":   len(b),
		"elapsed": time.Since(start),
	}).Debug("loaded source")

	return string(b)
}

// stdPrinter routes the internal package's output to stdout/stderr.
type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}
