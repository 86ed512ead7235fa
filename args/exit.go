package args

import (
	"errors"
)

// ExitError requests a specific exit code from a program built on args.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
	Misusage     int // default: 2, scan errors
	SchemaError  int // default: 3
}

// DefaultExitCodes returns the stock defaults
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, Misusage: 2, SchemaError: 3}
}

// ExitCodes maps parse errors to process exit codes.
type ExitCodes struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

// NewExitCodes creates a mapping prewired with the default categories
func NewExitCodes() *ExitCodes {
	e := &ExitCodes{byType: make(map[ErrorType]int)}
	return e.Default(DefaultExitCodes())
}

// Default replaces the default codes and rewires every category to them.
// Overrides registered with DefineType before this call are discarded.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	e.defaults = d
	e.byType[ErrorTypeInvalidIdentifier] = d.SchemaError
	e.byType[ErrorTypeInvalidTypeMarker] = d.SchemaError
	e.byType[ErrorTypeUnexpectedArgument] = d.Misusage
	e.byType[ErrorTypeMissingValue] = d.Misusage
	e.byType[ErrorTypeInvalidValue] = d.Misusage
	e.byType[ErrorTypeMalformedValue] = d.Misusage
	return e
}

// DefineType overrides the exit code for one error category
func (e *ExitCodes) DefineType(typ ErrorType, code int) *ExitCodes {
	e.byType[typ] = code
	return e
}

// Resolve converts err to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping (DefineType)
//  3. GeneralError
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.byType[pe.Type]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}
