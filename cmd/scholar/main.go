// Command scholar records students and reports their scholarship awards.
package main

import (
	"os"

	"github.com/roach88/scholar/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
