package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zarraq-dev/windows-scheduled-file-cleaner-script/internal/cli"
)

// main is a thin process boundary: all arguments are canonicalized into an
// Invocation before any cleanup logic runs, and every outcome is reduced to a
// semantic exit code. An external scheduler invokes this once per cadence.
func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	result, execErr := cli.Execute(context.Background(), inv, os.Stdout)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	os.Exit(result.ExitCode)
}
