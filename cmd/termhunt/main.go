package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/termhunt/internal/cli"
	"github.com/vvka-141/termhunt/pkg/termhunt"
)

func main() {
	// Recover from panics so the terminal gets a stack trace and a distinct exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(termhunt.ExitPanic)
		}
	}()

	if os.Getenv("TERMHUNT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(termhunt.ExitCodeForError(err))
	}
}
