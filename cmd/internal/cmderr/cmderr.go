package cmderr

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitErr is an error carrying the process exit code.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

func (x ExitErr) Unwrap() error { return x.Cause }

// Code returns the exit code for err: ExitErr's one if err wraps it, 1 for
// other non-nil errors and 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var e ExitErr
	if errors.As(err, &e) {
		return e.Code
	}
	return 1
}

// ExitOnErr writes error to os.Stderr and calls os.Exit with the Code of err.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		printErr(os.Stderr, err)
		os.Exit(Code(err))
	}
}

func printErr(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}
