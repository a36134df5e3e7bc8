package display

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chriso345/ezcli/errors"
)

// BuildHelp returns a help message for the program called name, listing args
// as an aligned options table.
//
// The output starts with a usage line ("Usage: name [OPTIONS]"), followed by
// an "Options:" section when args is non-empty. Each option line holds the
// usage of the argument and its description, with descriptions aligned in a
// single column.
func BuildHelp(name string, args []Arg) (string, error) {
	if name == "" {
		return "", errors.NewParseError("help requires a program name")
	}

	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(name, ansiBold))
	if len(args) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if len(args) > 0 {
		opts, err := optionsHelp(args)
		if err != nil {
			return "", err
		}
		builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(opts)
	}

	return builder.String(), nil
}

// optionsHelp generates the aligned option lines for args.
func optionsHelp(args []Arg) (string, error) {
	type row struct{ usage, desc string }

	var rows []row
	maxLen := 0

	for _, a := range args {
		if err := a.validate(); err != nil {
			return "", err
		}
		flag := "  " + a.usage()
		if n := utf8.RuneCountInString(flag); n > maxLen {
			maxLen = n
		}
		rows = append(rows, row{usage: flag, desc: a.Desc})
	}

	// Format with aligned descriptions
	var builder strings.Builder
	for _, r := range rows {
		padding := strings.Repeat(" ", maxLen-utf8.RuneCountInString(r.usage))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", r.usage, padding, r.desc))
	}
	return builder.String(), nil
}
