package args

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dzonerzy/go-args/internal/intern"
)

// Schema maps each declared flag identifier to its marker.
// It is built once by CompileSchema and treated as read-only afterwards.
type Schema map[rune]Marker

// CompileSchema parses a schema such as "l,p#,d*" into a Schema.
//
// Elements are separated by commas and trimmed; blank elements are skipped.
// The first rune of each element is the identifier and must be a letter,
// the rest is the marker. A repeated identifier keeps its last declaration.
func CompileSchema(schema string) (Schema, error) {
	compiled := make(Schema)
	for _, element := range strings.Split(schema, ",") {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}

		id, size := utf8.DecodeRuneInString(element)
		marker := Marker(element[size:])

		if !unicode.IsLetter(id) {
			return nil, &ParseError{Type: ErrorTypeInvalidIdentifier, Identifier: id}
		}
		if !marker.Valid() {
			return nil, &ParseError{Type: ErrorTypeInvalidTypeMarker, Identifier: id, Parameter: string(marker)}
		}
		compiled[id] = marker
	}
	return compiled, nil
}

// Has reports whether id is declared
func (s Schema) Has(id rune) bool {
	_, ok := s[id]
	return ok
}

// Identifiers returns the declared identifiers in ascending order.
func (s Schema) Identifiers() []rune {
	ids := make([]rune, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// String renders the schema in canonical form: sorted identifiers, no blanks.
// Compiling the result yields an equal Schema.
func (s Schema) String() string {
	var builder strings.Builder
	for i, id := range s.Identifiers() {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(intern.Rune(id))
		builder.WriteString(string(s[id]))
	}
	return builder.String()
}
