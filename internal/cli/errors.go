package cli

import "fmt"

// exitError carries the exit code a failed command should produce.
type exitError struct {
	code int
	err  error
	// reported is set when the command already told the user.
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func runtimeError(err error) error {
	return &exitError{code: 1, err: err}
}
