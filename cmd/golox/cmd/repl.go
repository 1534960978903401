package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"

	"golox/internal"
)

// repl reads one expression per line and prints its tree. A failed
// line only affects that line.
func repl() {
	fmt.Println(color.Green("golox", color.B), "- type an expression, ctrl-d to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Blue("> "))
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		internal.RunSourceWithPrinter(line, stdPrinter{})
	}
}
