package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
)

// Exit codes for httpie CLI
const (
	// ExitSuccess indicates the request was sent and printed, whatever its HTTP status
	ExitSuccess = 0

	// ExitFailure indicates a network, decoding or output error
	ExitFailure = 1

	// ExitParseError indicates invalid arguments
	ExitParseError = 2
)

// usageError marks errors raised while interpreting the command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

func isUsageError(err error) bool {
	var uerr *usageError
	var perr *parser.ParseError
	return errors.As(err, &uerr) || errors.As(err, &perr)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case isUsageError(err):
		return ExitParseError
	default:
		return ExitFailure
	}
}
