package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/treecmp/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n", cli.FormatError(err))
		}
		os.Exit(cli.ExitCode(err))
	}
}
