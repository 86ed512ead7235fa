// Package args parses single-letter command-line flags against a compact
// schema string and exposes the results as typed values.
//
//	a, err := args.New("l,p#,d*", os.Args[1:])
//	if err != nil {
//		fmt.Fprintln(os.Stderr, args.NewErrorHandler().Format(err))
//		os.Exit(args.NewExitCodes().Resolve(err))
//	}
//	logging := a.MustGetBool('l', false)
//	port := a.MustGetInt('p', 8080)
package args

import (
	"github.com/dzonerzy/go-args/internal/pool"
)

// session holds the per-parse tables that are recycled through sessionPool.
type session struct {
	registry *Registry
	found    map[rune]struct{}
	order    []rune
}

func (s *session) markFound(id rune) {
	if _, ok := s.found[id]; ok {
		return
	}
	s.found[id] = struct{}{}
	s.order = append(s.order, id)
}

var sessionPool = pool.NewPoolWithReset(
	func() *session {
		return &session{
			registry: NewRegistry(),
			found:    make(map[rune]struct{}, 8),
			order:    make([]rune, 0, 8),
		}
	},
	func(s *session) {
		s.registry.reset()
		clear(s.found)
		s.order = s.order[:0]
	},
)

// Args is the result of one successful parse.
// It is not safe for concurrent use.
type Args struct {
	schema  Schema
	argv    []string
	next    int
	session *session
}

// New compiles schema and scans argv against it. Any schema or scan error
// aborts the parse and no *Args is returned.
func New(schema string, argv []string) (*Args, error) {
	compiled, err := CompileSchema(schema)
	if err != nil {
		return nil, err
	}

	s := sessionPool.Get()
	sc := scanner{schema: compiled, argv: argv, session: s}
	if err := sc.scan(); err != nil {
		sessionPool.Put(s)
		return nil, err
	}

	return &Args{
		schema:  compiled,
		argv:    argv,
		next:    sc.cursor,
		session: s,
	}, nil
}

// Has reports whether the flag appeared in the argument list
func (a *Args) Has(id rune) bool {
	_, ok := a.session.found[id]
	return ok
}

// Value returns the typed value of a declared flag: bool, string, int,
// float64, []string, map[string]string or Color. A declared flag that was
// never given yields its default. Undeclared identifiers yield nil.
func (a *Args) Value(id rune) any {
	m, ok := a.marshaler(id)
	if !ok {
		return nil
	}
	return m.Value()
}

func (a *Args) marshaler(id rune) (Marshaler, bool) {
	if m, ok := a.session.registry.lookup(id); ok {
		return m, true
	}
	marker, ok := a.schema[id]
	if !ok {
		return nil, false
	}
	m, err := a.session.registry.Marshaler(marker, id)
	if err != nil {
		return nil, false
	}
	return m, true
}

// NextArgument returns the index of the first argument not consumed by the scan.
func (a *Args) NextArgument() int {
	return a.next
}

// Rest returns a copy of the arguments from NextArgument onwards.
func (a *Args) Rest() []string {
	rest := make([]string, len(a.argv)-a.next)
	copy(rest, a.argv[a.next:])
	return rest
}

// Found returns the identifiers that appeared, in first-seen order.
func (a *Args) Found() []rune {
	out := make([]rune, len(a.session.order))
	copy(out, a.session.order)
	return out
}

// Schema returns the compiled schema
func (a *Args) Schema() Schema {
	return a.schema
}

// Release returns the session tables for reuse by later parses.
// a must not be used afterwards.
func (a *Args) Release() {
	if a.session == nil {
		return
	}
	sessionPool.Put(a.session)
	a.session = nil
}

// typed returns the value for id when the schema declares it with want.
// Presence on the command line does not matter.
func (a *Args) typed(id rune, want Marker) (any, bool) {
	if marker, ok := a.schema[id]; !ok || marker != want {
		return nil, false
	}
	return a.Value(id), true
}

// GetBool returns the boolean flag id. ok is false when id is undeclared
// or not a boolean flag.
func (a *Args) GetBool(id rune) (bool, bool) {
	v, ok := a.typed(id, MarkerBool)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// GetString returns the string flag id, or "" if it was not passed
func (a *Args) GetString(id rune) (string, bool) {
	v, ok := a.typed(id, MarkerString)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// GetInt returns the integer flag id, or 0 if it was not passed
func (a *Args) GetInt(id rune) (int, bool) {
	v, ok := a.typed(id, MarkerInt)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// GetFloat returns the float flag id, or 0 if it was not passed
func (a *Args) GetFloat(id rune) (float64, bool) {
	v, ok := a.typed(id, MarkerFloat)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

// GetStringSlice returns a copy of every value given to the list flag id,
// in command-line order
func (a *Args) GetStringSlice(id rune) ([]string, bool) {
	v, ok := a.typed(id, MarkerStringList)
	if !ok {
		return nil, false
	}
	return v.([]string), true
}

// GetMap returns a copy of the merged entries of the map flag id
func (a *Args) GetMap(id rune) (map[string]string, bool) {
	v, ok := a.typed(id, MarkerMap)
	if !ok {
		return nil, false
	}
	return v.(map[string]string), true
}

// GetColor returns the colour flag id, or ColorNone if it was not passed
func (a *Args) GetColor(id rune) (Color, bool) {
	v, ok := a.typed(id, MarkerColor)
	if !ok {
		return ColorNone, false
	}
	return v.(Color), true
}

// MustGetBool returns the boolean flag id if it was passed, otherwise def.
// def is also returned when id is undeclared or has another marker.
func (a *Args) MustGetBool(id rune, def bool) bool {
	if v, ok := a.GetBool(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetString returns the string flag id if it was passed, otherwise def
func (a *Args) MustGetString(id rune, def string) string {
	if v, ok := a.GetString(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetInt returns the integer flag id if it was passed, otherwise def
func (a *Args) MustGetInt(id rune, def int) int {
	if v, ok := a.GetInt(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetFloat returns the float flag id if it was passed, otherwise def
func (a *Args) MustGetFloat(id rune, def float64) float64 {
	if v, ok := a.GetFloat(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetStringSlice returns the list flag id if it was passed, otherwise def
func (a *Args) MustGetStringSlice(id rune, def []string) []string {
	if v, ok := a.GetStringSlice(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetMap returns the map flag id if it was passed, otherwise def
func (a *Args) MustGetMap(id rune, def map[string]string) map[string]string {
	if v, ok := a.GetMap(id); ok && a.Has(id) {
		return v
	}
	return def
}

// MustGetColor returns the colour flag id if it was passed, otherwise def
func (a *Args) MustGetColor(id rune, def Color) Color {
	if v, ok := a.GetColor(id); ok && a.Has(id) {
		return v
	}
	return def
}
