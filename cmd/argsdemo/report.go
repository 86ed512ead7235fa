package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-args/args"
	argsio "github.com/dzonerzy/go-args/io"
)

// reportedError marks a parse error whose message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

type flagReport struct {
	Flag    string `json:"flag"`
	Marker  string `json:"marker"`
	Kind    string `json:"kind"`
	Present bool   `json:"present"`
	Value   any    `json:"value"`
}

// MarshalJSON writes NaN and ±Inf as strings, which encoding/json rejects as numbers.
func (f flagReport) MarshalJSON() ([]byte, error) {
	type plain flagReport
	p := plain(f)
	if v, ok := p.Value.(float64); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
		p.Value = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return json.Marshal(p)
}

type report struct {
	Schema       string       `json:"schema"`
	Flags        []flagReport `json:"flags"`
	Found        []string     `json:"found"`
	NextArgument int          `json:"next_argument"`
	Rest         []string     `json:"rest"`
}

func buildReport(a *args.Args) report {
	schema := a.Schema()
	rep := report{
		Schema:       schema.String(),
		Flags:        make([]flagReport, 0, len(schema)),
		Found:        make([]string, 0, len(schema)),
		NextArgument: a.NextArgument(),
		Rest:         a.Rest(),
	}
	for _, id := range schema.Identifiers() {
		marker := schema[id]
		rep.Flags = append(rep.Flags, flagReport{
			Flag:    "-" + string(id),
			Marker:  string(marker),
			Kind:    string(marker.Kind()),
			Present: a.Has(id),
			Value:   a.Value(id),
		})
	}
	for _, id := range a.Found() {
		rep.Found = append(rep.Found, "-"+string(id))
	}
	return rep
}

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func writeText(iom *argsio.IOManager, rep report) {
	w := iom.Out()
	fmt.Fprintf(w, "%s %s\n", iom.Bold("schema:"), rep.Schema)
	for _, f := range rep.Flags {
		state := "absent "
		if f.Present {
			state = argsio.NewStyle().Fg(argsio.Green).Sprint(iom, "present")
		}
		fmt.Fprintf(w, "  %-3s %-8s %s  %s\n", f.Flag, f.Kind, state, formatValue(iom, f.Value))
	}
	fmt.Fprintf(w, "%s %d\n", iom.Bold("next argument:"), rep.NextArgument)
	if len(rep.Rest) > 0 {
		fmt.Fprintf(w, "%s %q\n", iom.Bold("rest:"), rep.Rest)
	}
}

func formatValue(iom *argsio.IOManager, v any) string {
	switch value := v.(type) {
	case string:
		return fmt.Sprintf("%q", value)
	case []string:
		return fmt.Sprintf("%q", value)
	case map[string]string:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + ":" + value[k]
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case args.Color:
		if value == args.ColorNone {
			return iom.Faint("(unset)")
		}
		if spec, ok := argsio.ColorByName(value.String()); ok {
			return argsio.NewStyle().Fg(spec).Bold().Sprint(iom, value.String())
		}
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

func printMarkers(iom *argsio.IOManager) {
	w := iom.Out()
	fmt.Fprintf(w, "%s\n", iom.Bold(fmt.Sprintf("%-7s %-8s %-6s %s", "MARKER", "KIND", "VALUE", "DESCRIPTION")))
	for _, m := range args.Markers {
		shown := string(m)
		if shown == "" {
			shown = "(none)"
		}
		value := "no"
		if m.NeedsValue() {
			value = "yes"
		}
		fmt.Fprintf(w, "%-7s %-8s %-6s %s\n", shown, m.Kind(), value, m.Description())
	}
}
