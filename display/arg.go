package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriso345/ezcli/core"
	"github.com/chriso345/ezcli/errors"
)

// Arg documents a single flag or option.
//
// A flag has neither Value nor Choices. An option takes a free value named by
// Value (e.g. "VALUE"), or one of Choices. Choices win when both are set.
type Arg struct {
	Name    core.Name
	Value   string
	Choices []string
	Desc    string
}

// usage returns the left-hand part of the documentation line, e.g.
// "-a, --my-arg <VALUE>" or "--mode [fast|slow]".
func (a Arg) usage() string {
	s := a.Name.String()
	switch {
	case len(a.Choices) > 0:
		s += " [" + strings.Join(a.Choices, "|") + "]"
	case a.Value != "":
		s += " <" + a.Value + ">"
	}
	return s
}

// validate rejects arguments that cannot be rendered unambiguously.
func (a Arg) validate() error {
	if a.Name.IsZero() {
		return errors.NewParseError("argument must have a short or long name")
	}
	for _, c := range a.Choices {
		if c == "" {
			return errors.NewParseError(fmt.Sprintf("argument %s has an empty choice", a.Name))
		}
	}
	return nil
}

// BuildArg returns the documentation for a, formatted as the usage followed by
// the indented description on the next line:
//
//	-a, --my-arg <VALUE>:
//	    Description
func BuildArg(a Arg) (string, error) {
	if err := a.validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:\n    %s", a.usage(), a.Desc), nil
}

// PrintArg writes the documentation for a to w, followed by a newline.
func PrintArg(w io.Writer, a Arg) error {
	s, err := BuildArg(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
