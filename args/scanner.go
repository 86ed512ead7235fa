package args

import (
	"errors"
	"strings"
)

// scanner walks the raw argument list once, left to right.
// cursor always points at the next unread token.
type scanner struct {
	schema  Schema
	argv    []string
	cursor  int
	session *session
}

// scan consumes flag clusters until the first token without a '-' prefix
// or the end of the list. On return cursor is the stop index.
func (sc *scanner) scan() error {
	for sc.cursor < len(sc.argv) {
		token := sc.argv[sc.cursor]
		if !strings.HasPrefix(token, "-") {
			return nil
		}
		sc.cursor++

		// Each identifier in the cluster is claimed in order; value flags
		// take the next whole token, so the first one to ask gets it.
		for _, id := range token[1:] {
			if err := sc.claim(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (sc *scanner) claim(id rune) error {
	marker, ok := sc.schema[id]
	if !ok {
		return &ParseError{Type: ErrorTypeUnexpectedArgument, Identifier: id}
	}
	sc.session.markFound(id)

	m, err := sc.session.registry.Marshaler(marker, id)
	if err != nil {
		return err
	}

	var value string
	present := true
	if m.NeedsValue() {
		value, present = sc.take()
	}
	if err := m.Set(value, present); err != nil {
		return withIdentifier(err, id)
	}
	return nil
}

// take returns the next whole token and advances past it
func (sc *scanner) take() (string, bool) {
	if sc.cursor >= len(sc.argv) {
		return "", false
	}
	token := sc.argv[sc.cursor]
	sc.cursor++
	return token, true
}

func withIdentifier(err error, id rune) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Identifier == 0 {
		pe.Identifier = id
	}
	return err
}
