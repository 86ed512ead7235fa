package args

import (
	"errors"
	"maps"
	"math"
	"strconv"
	"strings"
)

// Marshaler converts the raw tokens for one flag identifier into a typed value.
// The set of implementations is closed; obtain one through a Registry.
type Marshaler interface {
	// NeedsValue reports whether the flag consumes the following token.
	NeedsValue() bool
	// Set stores value. present is false when the argument list ran out
	// before a value could be taken.
	Set(value string, present bool) error
	// Value returns the current typed value (or a snapshot of it).
	Value() any
	// Marker returns the schema marker this marshaler was built for.
	Marker() Marker

	sealed()
}

// newMarshaler returns a fresh, default-valued marshaler for m, or nil when
// m is not a recognised marker.
func newMarshaler(m Marker) Marshaler {
	switch m {
	case MarkerBool:
		return &boolMarshaler{}
	case MarkerString:
		return &stringMarshaler{}
	case MarkerInt:
		return &intMarshaler{}
	case MarkerFloat:
		return &floatMarshaler{}
	case MarkerStringList:
		return &stringListMarshaler{}
	case MarkerMap:
		return &mapMarshaler{values: make(map[string]string)}
	case MarkerColor:
		return &colorMarshaler{}
	default:
		return nil
	}
}

type boolMarshaler struct {
	value bool
}

func (*boolMarshaler) NeedsValue() bool { return false }
func (*boolMarshaler) Marker() Marker   { return MarkerBool }
func (*boolMarshaler) sealed()          {}
func (bm *boolMarshaler) Value() any    { return bm.value }

func (bm *boolMarshaler) Set(string, bool) error {
	bm.value = true
	return nil
}

type stringMarshaler struct {
	value string
}

func (*stringMarshaler) NeedsValue() bool { return true }
func (*stringMarshaler) Marker() Marker   { return MarkerString }
func (*stringMarshaler) sealed()          {}
func (sm *stringMarshaler) Value() any    { return sm.value }

func (sm *stringMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindString)
	}
	sm.value = value
	return nil
}

type intMarshaler struct {
	value int
}

func (*intMarshaler) NeedsValue() bool { return true }
func (*intMarshaler) Marker() Marker   { return MarkerInt }
func (*intMarshaler) sealed()          {}
func (im *intMarshaler) Value() any    { return im.value }

func (im *intMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindInteger)
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return invalidValue(KindInteger, value)
	}
	im.value = int(n)
	return nil
}

type floatMarshaler struct {
	value float64
}

func (*floatMarshaler) NeedsValue() bool { return true }
func (*floatMarshaler) Marker() Marker   { return MarkerFloat }
func (*floatMarshaler) sealed()          {}
func (fm *floatMarshaler) Value() any    { return fm.value }

func (fm *floatMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindFloat)
	}
	f, ok := parseDecimal(value)
	if !ok {
		return invalidValue(KindFloat, value)
	}
	fm.value = f
	return nil
}

// parseDecimal accepts surrounding control whitespace, an optional d/D/f/F
// suffix and the exact words NaN and Infinity. Overflow yields ±Inf.
func parseDecimal(value string) (float64, bool) {
	s := strings.TrimFunc(value, func(r rune) bool { return r <= ' ' })
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	switch body {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	// strconv would take inf, infinity and nan in any case
	if body == "" || (body[0] != '.' && (body[0] < '0' || body[0] > '9')) {
		return 0, false
	}
	if last := s[len(s)-1]; strings.IndexByte("dDfF", last) >= 0 {
		s = s[:len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

type stringListMarshaler struct {
	values []string
}

func (*stringListMarshaler) NeedsValue() bool { return true }
func (*stringListMarshaler) Marker() Marker   { return MarkerStringList }
func (*stringListMarshaler) sealed()          {}

// Value returns a copy so callers cannot alias later appends.
func (lm *stringListMarshaler) Value() any {
	out := make([]string, len(lm.values))
	copy(out, lm.values)
	return out
}

func (lm *stringListMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindString)
	}
	lm.values = append(lm.values, value)
	return nil
}

type mapMarshaler struct {
	values map[string]string
}

func (*mapMarshaler) NeedsValue() bool { return true }
func (*mapMarshaler) Marker() Marker   { return MarkerMap }
func (*mapMarshaler) sealed()          {}
func (mm *mapMarshaler) Value() any    { return maps.Clone(mm.values) }

// Set merges "k1:v1,k2:v2" into the map. Entries before a malformed one
// stay merged; the whole parse fails so the partial state is never observed.
func (mm *mapMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindMap)
	}
	for _, entry := range split(value, ",") {
		parts := split(entry, ":")
		if len(parts) != 2 {
			return malformedValue(KindMap, entry)
		}
		mm.values[parts[0]] = parts[1]
	}
	return nil
}

// split drops trailing empty fields. A string without sep still yields
// itself, so "" splits to [""] while "," splits to nothing.
func split(s, sep string) []string {
	parts := strings.Split(s, sep)
	if len(parts) == 1 {
		return parts
	}
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

type colorMarshaler struct {
	value Color
}

func (*colorMarshaler) NeedsValue() bool { return true }
func (*colorMarshaler) Marker() Marker   { return MarkerColor }
func (*colorMarshaler) sealed()          {}
func (cm *colorMarshaler) Value() any    { return cm.value }

func (cm *colorMarshaler) Set(value string, present bool) error {
	if !present {
		return missingValue(KindColor)
	}
	c, ok := ParseColor(value)
	if !ok {
		return invalidValue(KindColor, value)
	}
	cm.value = c
	return nil
}
