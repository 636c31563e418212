package cli

import (
	"errors"
	"fmt"
	"os"
)

const usageExitCode = 2

// ExitCodeErr is an error carrying the exit code of the process.
type ExitCodeErr interface {
	ExitCode() int
}

// Main runs the root command and exits with a non-zero code on error.
func Main() {
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		ec := 1

		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}

		os.Exit(ec)
	}
}

// usageError reports a command line or script that cannot be run.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func (e *usageError) ExitCode() int { return usageExitCode }
