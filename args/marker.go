package args

// Marker is the schema tail that follows a flag identifier and selects the
// value type of that flag.
type Marker string

const (
	MarkerBool       Marker = ""
	MarkerString     Marker = "*"
	MarkerInt        Marker = "#"
	MarkerFloat      Marker = "##"
	MarkerStringList Marker = "[*]"
	MarkerMap        Marker = "&"
	MarkerColor      Marker = "$"
)

// Markers lists every recognised marker in schema documentation order.
var Markers = []Marker{
	MarkerBool,
	MarkerString,
	MarkerInt,
	MarkerFloat,
	MarkerStringList,
	MarkerMap,
	MarkerColor,
}

// Valid reports whether m is one of the recognised markers.
func (m Marker) Valid() bool {
	switch m {
	case MarkerBool, MarkerString, MarkerInt, MarkerFloat, MarkerStringList, MarkerMap, MarkerColor:
		return true
	default:
		return false
	}
}

// NeedsValue returns true if a flag with this marker consumes the next token
func (m Marker) NeedsValue() bool {
	return m != MarkerBool
}

// Kind returns the value kind reported in errors for this marker.
// String lists report KindString, matching the token they were missing.
func (m Marker) Kind() ValueKind {
	switch m {
	case MarkerBool:
		return KindBoolean
	case MarkerString, MarkerStringList:
		return KindString
	case MarkerInt:
		return KindInteger
	case MarkerFloat:
		return KindFloat
	case MarkerMap:
		return KindMap
	case MarkerColor:
		return KindColor
	default:
		return ""
	}
}

// Description is a short human label used by listings
func (m Marker) Description() string {
	switch m {
	case MarkerBool:
		return "boolean flag"
	case MarkerString:
		return "string"
	case MarkerInt:
		return "integer"
	case MarkerFloat:
		return "floating-point"
	case MarkerStringList:
		return "string list (repeatable)"
	case MarkerMap:
		return "key:value map (repeatable)"
	case MarkerColor:
		return "color (RED, GREEN, BLUE)"
	default:
		return "unknown"
	}
}

// ValueKind names the value type of a marshaler in error reports.
type ValueKind string

const (
	KindBoolean ValueKind = "boolean"
	KindString  ValueKind = "string"
	KindInteger ValueKind = "integer"
	KindFloat   ValueKind = "float"
	KindMap     ValueKind = "map"
	KindColor   ValueKind = "color"
)

// Color is the closed set of values accepted by MarkerColor flags.
type Color int

const (
	ColorNone Color = iota // unset
	ColorRed
	ColorGreen
	ColorBlue
)

var colorNames = [...]string{
	ColorNone:  "",
	ColorRed:   "RED",
	ColorGreen: "GREEN",
	ColorBlue:  "BLUE",
}

// ColorNames returns the accepted spellings in declaration order.
func ColorNames() []string {
	return []string{colorNames[ColorRed], colorNames[ColorGreen], colorNames[ColorBlue]}
}

// String returns the canonical upper-case name, or "" for ColorNone.
func (c Color) String() string {
	if c < ColorNone || int(c) >= len(colorNames) {
		return ""
	}
	return colorNames[c]
}

// MarshalText renders the colour name, so JSON output shows "RED" rather than 1.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseColor matches name exactly (case-sensitive) against the colour names.
func ParseColor(name string) (Color, bool) {
	for c := ColorRed; int(c) < len(colorNames); c++ {
		if colorNames[c] == name {
			return c, true
		}
	}
	return ColorNone, false
}
