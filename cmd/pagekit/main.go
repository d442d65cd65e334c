package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/pagekit/internal/cli"
	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/pkg/version"
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer config.CloseLogFile()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// exitCode maps the result of run to a process exit status. Cobra has already
// printed the error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
