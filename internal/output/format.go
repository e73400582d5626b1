// Package output renders decoded headers for the command line.
package output

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat parses a format name. An empty name picks a table for terminals
// and JSON otherwise.
func ParseFormat(s string, out *os.File) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if out != nil && IsTTY(out) {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json)", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// IsTTY checks if the given file is a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
