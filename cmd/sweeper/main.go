package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	// the first signal cancels the command, a second one kills the process
	context.AfterFunc(ctx, stop)

	if err := run(ctx, &cli{}, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and releases what setup opened, whether the
// command succeeded or not.
func run(ctx context.Context, c *cli, args []string) error {
	root := newRootCmd(c)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return errors.Join(err, c.close())
}
