package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) && ee.warn {
			color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(exitCode(err))
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	warn bool
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

const (
	exitOK       = 0
	exitFailure  = 1
	exitNotSaved = 2
)

func failure(format string, args ...any) error {
	return &exitError{code: exitFailure, err: fmt.Errorf(format, args...)}
}

func notSaved(err error) error {
	return &exitError{code: exitNotSaved, warn: true, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}
