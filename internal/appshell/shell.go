// Package appshell is the process entry point shared by binaries: it installs
// signal handling and turns the run function's result into an exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// exitInterrupted is returned when a signal arrives and run reports success.
const exitInterrupted = 130

// Run executes run under a context canceled by SIGINT/SIGTERM or by parent.
// No arguments means --help.
func Run(parent context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = exitInterrupted
	}
	return code
}

// Main runs run with the process arguments and exits with its code.
func Main(run RunFunc) {
	os.Exit(Run(context.Background(), run, os.Args[1:], os.Stdout, os.Stderr))
}
