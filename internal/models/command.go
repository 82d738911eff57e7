package models

import (
	"strconv"
	"strings"

	"mpvremote/internal/domain/consts"
)

// Command is a player control command compiled from the commands table.
// There are exactly two kinds: literal commands sent verbatim, and numeric
// commands whose template takes a float parameter.
type Command interface {
	// Resolve produces the exact text written to the player's control
	// stream, without the trailing newline. A nil parameter on a numeric
	// command resolves to an empty substitution, it never errors.
	Resolve(val *float64) string
}

// LiteralCommand is sent as-is; any supplied parameter is ignored.
type LiteralCommand string

func (c LiteralCommand) Resolve(_ *float64) string {
	return string(c)
}

// NumericCommand substitutes its parameter into the template placeholder.
type NumericCommand string

func (c NumericCommand) Resolve(val *float64) string {
	sub := ""
	if val != nil {
		sub = strconv.FormatFloat(*val, 'g', -1, 64)
	}
	return strings.Replace(string(c), consts.TemplatePlaceholder, sub, 1)
}

// CompileCommand classifies a command table entry by name. Numeric-ness is
// decided by the fixed command name set, not by inspecting the template.
func CompileCommand(name, template string) Command {
	if consts.NumericCommands[name] {
		return NumericCommand(template)
	}
	return LiteralCommand(template)
}
