// Package output renders command results to stdout in the selected format
// and structured errors to stderr. The wire types here are the CLI's public
// contract; they are decoupled from the internal menu types.
package output

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatAuto picks table on a TTY and json when piped.
	FormatAuto Format = "auto"
	// FormatJSON is a pretty-printed JSON array or object.
	FormatJSON Format = "json"
	// FormatCompact is single-line JSON.
	FormatCompact Format = "compact"
	// FormatNDJSON is newline-delimited JSON, one object per line.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
	// FormatTable is an aligned table with headers.
	FormatTable Format = "table"
	// FormatPath prints full paths only, one per line.
	FormatPath Format = "path"
	// FormatID prints titles only, one per line.
	FormatID Format = "id"
)

// OutputFormat is the effective output format, set by the root command
// after flag and TTY resolution.
var OutputFormat = FormatAuto

// Fields restricts table columns to the named fields. Nil means all.
var Fields []string

// NoHeader omits table headers.
var NoHeader bool

// ValidFormat reports whether s names a known format.
func ValidFormat(s string) bool {
	switch Format(s) {
	case FormatAuto, FormatJSON, FormatCompact, FormatNDJSON, FormatYAML, FormatTable, FormatPath, FormatID:
		return true
	}
	return false
}

// ResolveFormat applies the --json shorthand and auto-detection: table when
// stdout is a TTY, json when piped.
func ResolveFormat(format Format, jsonFlag bool) Format {
	if jsonFlag {
		return FormatJSON
	}
	if format == FormatAuto {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return FormatTable
		}
		return FormatJSON
	}
	return format
}

// ParseFields splits a comma-separated field projection. Empty input
// yields nil, meaning no projection.
func ParseFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			fields = append(fields, name)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func includeField(name string) bool {
	if Fields == nil {
		return true
	}
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
