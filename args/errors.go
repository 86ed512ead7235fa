package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dzonerzy/go-args/internal/fuzzy"
	"github.com/dzonerzy/go-args/internal/intern"
)

// ErrorType represents the failure categories of schema compilation and scanning.
// These categories drive suggestion logic and exit-code mapping (via ExitCodes).
type ErrorType string

const (
	ErrorTypeInvalidIdentifier  ErrorType = "invalid_identifier"
	ErrorTypeInvalidTypeMarker  ErrorType = "invalid_type_marker"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeMalformedValue     ErrorType = "malformed_value"
)

// ParseError is returned by New, CompileSchema and the marshalers.
type ParseError struct {
	Type       ErrorType
	Kind       ValueKind // value type involved; empty for schema and unexpected-argument errors
	Identifier rune      // offending flag identifier; 0 until the scanner attaches it
	Parameter  string    // offending marker, token or map entry
}

func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeInvalidIdentifier:
		return "invalid flag identifier: '" + intern.Rune(e.Identifier) + "'"
	case ErrorTypeInvalidTypeMarker:
		return fmt.Sprintf("invalid type marker%s: %q", e.forFlag(), e.Parameter)
	case ErrorTypeUnexpectedArgument:
		if e.Identifier == 0 {
			return "unexpected argument"
		}
		return "unexpected argument: " + intern.Flag(e.Identifier)
	case ErrorTypeMissingValue:
		return fmt.Sprintf("missing %s value%s", e.Kind, e.forFlag())
	case ErrorTypeInvalidValue:
		return fmt.Sprintf("invalid %s value%s: %q", e.Kind, e.forFlag(), e.Parameter)
	case ErrorTypeMalformedValue:
		return fmt.Sprintf("malformed %s entry%s: %q", e.Kind, e.forFlag(), e.Parameter)
	default:
		return "argument error: " + string(e.Type)
	}
}

// forFlag renders " for -x", or nothing before the scanner attached an identifier
func (e *ParseError) forFlag() string {
	if e.Identifier == 0 {
		return ""
	}
	return " for " + intern.Flag(e.Identifier)
}

// IsSchemaError reports whether the error came from schema compilation
// rather than from scanning the argument list.
func (e *ParseError) IsSchemaError() bool {
	return e.Type == ErrorTypeInvalidIdentifier || e.Type == ErrorTypeInvalidTypeMarker
}

func missingValue(kind ValueKind) *ParseError {
	return &ParseError{Type: ErrorTypeMissingValue, Kind: kind}
}

func invalidValue(kind ValueKind, token string) *ParseError {
	return &ParseError{Type: ErrorTypeInvalidValue, Kind: kind, Parameter: token}
}

func malformedValue(kind ValueKind, entry string) *ParseError {
	return &ParseError{Type: ErrorTypeMalformedValue, Kind: kind, Parameter: entry}
}

// ErrorHandler renders errors for people, with optional fuzzy suggestions.
type ErrorHandler struct {
	suggestValues bool
	maxDistance   int
	custom        map[ErrorType]func(*ParseError) []string
}

// NewErrorHandler creates a handler with suggestions enabled
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		suggestValues: true,
		maxDistance:   2,
		custom:        make(map[ErrorType]func(*ParseError) []string),
	}
}

// SuggestValues enables/disables marker and colour suggestions
func (eh *ErrorHandler) SuggestValues(enabled bool) *ErrorHandler {
	eh.suggestValues = enabled
	return eh
}

// MaxDistance sets the maximum edit distance for suggestions
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// Handle registers extra hint lines for a specific error type
func (eh *ErrorHandler) Handle(typ ErrorType, hints func(*ParseError) []string) *ErrorHandler {
	eh.custom[typ] = hints
	return eh
}

// Suggestions returns the hint lines Format would print for err.
func (eh *ErrorHandler) Suggestions(err error) []string {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return nil
	}

	var out []string
	if eh.suggestValues {
		switch pe.Type { // exhaustive over ErrorType
		case ErrorTypeInvalidTypeMarker:
			if m := fuzzy.SuggestMarker(pe.Parameter, markerCandidates(), eh.maxDistance); m != "" {
				out = append(out, fmt.Sprintf("Did you mean '%s%s'?", intern.Rune(pe.Identifier), m))
			}
		case ErrorTypeInvalidValue:
			if pe.Kind == KindColor {
				if c := fuzzy.SuggestName(pe.Parameter, ColorNames(), eh.maxDistance); c != "" {
					out = append(out, fmt.Sprintf("Did you mean '%s'?", c))
				} else {
					out = append(out, "Valid colors: "+strings.Join(ColorNames(), ", "))
				}
			}
		case ErrorTypeInvalidIdentifier, ErrorTypeUnexpectedArgument,
			ErrorTypeMissingValue, ErrorTypeMalformedValue:
			// No suggestions for these by default.
		}
	}
	if hints, ok := eh.custom[pe.Type]; ok {
		out = append(out, hints(pe)...)
	}
	return out
}

// Format builds "Error: <message>" followed by indented suggestion lines.
func (eh *ErrorHandler) Format(err error) string {
	if err == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("Error: ")
	builder.WriteString(err.Error())
	for _, s := range eh.Suggestions(err) {
		builder.WriteString("\n  ")
		builder.WriteString(s)
	}
	return builder.String()
}

func markerCandidates() []string {
	out := make([]string, 0, len(Markers))
	for _, m := range Markers {
		if m != MarkerBool {
			out = append(out, string(m))
		}
	}
	return out
}
