package main

import (
	"os"

	"golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
