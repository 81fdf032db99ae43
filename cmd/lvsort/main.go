// Command lvsort runs the merge sort driver scenarios and sorts integers
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvsort/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvsort:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
