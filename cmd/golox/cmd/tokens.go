package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"golox/internal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <script>",
	Short: "Dump the token stream of a script",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := loadSource(args[0])
		logrus.WithField("bytes", len(source)).Debug("scanning")
		if !internal.ScanSourceWithPrinter(source, stdPrinter{}) {
			os.Exit(65)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
