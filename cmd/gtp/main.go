// A command line tool to work with Go Text Protocol lines
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "gtp",
		Short: "Parse and check Go Text Protocol command lines",
		Long: `Parse and check Go Text Protocol command lines.

Input is read line by line. Comments starting with '#' are stripped and
blank lines are skipped, every other line must be a protocol command:

    [count] command [argument ...]`,
		SilenceUsage: true,
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
