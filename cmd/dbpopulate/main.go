package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/cli"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(populate.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(populate.ExitCodeForError(err))
	}
}
