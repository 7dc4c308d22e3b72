package commands

import "errors"

// Exit statuses of the isxml command.
const (
	ExitXML     = 0
	ExitNotXML  = 1
	ExitFailure = 2
)

// ErrNotXML is reported with ExitNotXML when at least one input does not look like XML.
var ErrNotXML = errors.New("not every input looks like XML")

// An error type that includes an exit code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func ExitWithCode(code int, err error) *ExitError {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// ExitCode maps an Execute error to a process exit status.
// Errors without an attached code are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitXML
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
