package ezcli

import (
	"github.com/chriso345/ezcli/core"
	"github.com/chriso345/ezcli/display"
)

// Args returns the arguments of the running process, program path first.
// Read them once and pass them to HasFlag, OptionValue and the other
// slice-based lookups.
func Args() []string {
	return core.ProcessArgs()
}

// Flag reports whether the flag named by name was passed to the program.
//
// Usage:
//
//	// accepts -v, --verbose or a group such as -qv
//	if ezcli.Flag(ezcli.NewName("verbose", "v")) {
//		...
//	}
func Flag(name Name) bool {
	return core.HasFlag(core.ProcessArgs(), name)
}

// Option returns the value passed to the program after the option named by
// name. See OptionValue for how short and long forms are combined.
//
// Usage:
//
//	// accepts "--my-arg value" or "-m value"
//	val, ok := ezcli.Option(ezcli.NewName("my_arg", "m"))
func Option(name Name) (string, bool) {
	return core.OptionValue(core.ProcessArgs(), name)
}

// HasFlag reports whether the flag named by name is present in args. args[0]
// is the program path and is skipped.
//
// Long names match exactly, with underscores read as hyphens. Short names
// match any single-hyphen token containing them, so "-abc" holds -a, -b and -c.
//
// Example:
//
//	args := []string{"prog", "-abcd", "--efgh"}
//	ezcli.HasFlag(args, ezcli.ShortName("c"))   // true
//	ezcli.HasFlag(args, ezcli.ShortName("e"))   // false
//	ezcli.HasFlag(args, ezcli.LongName("efgh")) // true
var HasFlag = core.HasFlag

// HasExactFlag reports whether -short or --long appears verbatim in args,
// without flag group expansion.
var HasExactFlag = core.HasExactFlag

// OptionValue returns the token after the option named by name in args.
//
// The short form is looked up first; the long form is looked up
// independently only when that finds nothing. The option is absent when it
// is missing or is the last token.
//
// Example:
//
//	args := []string{"prog", "--my-arg", "value"}
//	val, ok := ezcli.OptionValue(args, ezcli.LongName("my_arg")) // "value", true
var OptionValue = core.OptionValue

// OptionValueSingleScan is OptionValue with one left-to-right pass over both
// forms: the first occurrence of either form decides the result.
var OptionValueSingleScan = core.OptionValueSingleScan

// RequireOption is OptionValue returning a MissingArgError when the option is
// absent.
var RequireOption = core.RequireOption

// IntOption returns an option value converted to int.
var IntOption = core.IntOption

// FloatOption returns an option value converted to float64.
var FloatOption = core.FloatOption

// BoolOption returns an option value converted to bool.
var BoolOption = core.BoolOption

// ChoiceOption returns an option value that must be one of the given choices.
var ChoiceOption = core.ChoiceOption

// BuildArg returns the two-line documentation for a single argument:
//
//	-a, --my-arg <VALUE>:
//	    Description
var BuildArg = display.BuildArg

// PrintArg writes the documentation for a single argument to w.
var PrintArg = display.PrintArg

// BuildHelp returns a usage line and an aligned options table for the
// program called name.
//
// Example:
//
//	help, err := ezcli.BuildHelp("mytool", []ezcli.Arg{
//		{Name: ezcli.NewName("verbose", "v"), Desc: "Enable verbose output"},
//		{Name: ezcli.NewName("output", "o"), Value: "FILE", Desc: "Output file"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(help)
var BuildHelp = display.BuildHelp

// BuildVersion returns "name vVERSION", inferring the version from build info
// when version is empty.
var BuildVersion = display.BuildVersion
