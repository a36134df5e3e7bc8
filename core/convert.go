package core

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/chriso345/ezcli/errors"
)

// RequireOption returns the value of the option named by name, or a
// MissingArgError when it is absent.
func RequireOption(args []string, name Name) (string, error) {
	val, ok := OptionValue(args, name)
	if !ok {
		return "", errors.NewMissingArg(name.String())
	}
	return val, nil
}

// IntOption returns the value of the option named by name as an int.
// An absent option yields (0, false, nil).
func IntOption(args []string, name Name) (int, bool, error) {
	val, ok := OptionValue(args, name)
	if !ok {
		return 0, false, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, errors.NewInvalidValue(name.String(), val, "int")
	}
	return i, true, nil
}

// FloatOption returns the value of the option named by name as a float64.
func FloatOption(args []string, name Name) (float64, bool, error) {
	val, ok := OptionValue(args, name)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, true, errors.NewInvalidValue(name.String(), val, "float")
	}
	return f, true, nil
}

// BoolOption returns the value of the option named by name as a bool, using
// strconv.ParseBool ("true", "1", "false", "0", ...).
func BoolOption(args []string, name Name) (bool, bool, error) {
	val, ok := OptionValue(args, name)
	if !ok {
		return false, false, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, true, errors.NewInvalidValue(name.String(), val, "bool")
	}
	return b, true, nil
}

// ChoiceOption returns the value of the option named by name when it is one
// of choices. Any other value yields an InvalidValueError.
func ChoiceOption(args []string, name Name, choices []string) (string, bool, error) {
	val, ok := OptionValue(args, name)
	if !ok {
		return "", false, nil
	}
	if !slices.Contains(choices, val) {
		return "", true, errors.NewInvalidValue(name.String(), val, fmt.Sprintf("one of %v", choices))
	}
	return val, true, nil
}
