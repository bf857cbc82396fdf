package main

import (
	"fmt"
	"os"

	"launchgate/internal/cli"
	"launchgate/internal/platform/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "launchgate: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "launchgate: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
