package main

import (
	"fmt"
	"os"

	"github.com/boolsynth/boolsynth/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "boolsynth: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
