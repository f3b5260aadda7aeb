// Command rxd prints a hexadecimal dump of a file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dl/rxd/internal/cli"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	return cli.Main(ctx, os.Args[1:], cli.StdStreams())
}
