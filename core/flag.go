package core

import (
	"strings"

	"github.com/chriso345/ezcli/internal/common"
)

// HasFlag reports whether the flag named by name is present in args.
//
// args[0] is the program path and is never matched. When both forms are set
// the result is HasShortFlag || HasLongFlag. A zero Name is never present.
//
// Usage:
//
//	args := []string{"prog", "-vq", "--dry-run"}
//	core.HasFlag(args, core.ShortName("q"))                // true, flag group
//	core.HasFlag(args, core.LongName("dry_run"))           // true, "--dry-run"
//	core.HasFlag(args, core.NewName("force", "f"))         // false
func HasFlag(args []string, name Name) bool {
	if name.Short != "" && HasShortFlag(args, name.Short) {
		return true
	}
	return name.Long != "" && HasLongFlag(args, name.Long)
}

// HasShortFlag reports whether some token after the program path starts with
// a single hyphen and contains short in its remaining characters. Grouped
// flags such as "-abc" therefore satisfy "a", "b" and "c".
func HasShortFlag(args []string, short string) bool {
	if short == "" {
		return false
	}
	for _, arg := range common.SkipProgram(args) {
		if common.IsShortToken(arg) && strings.Contains(arg[1:], short) {
			return true
		}
	}
	return false
}

// HasLongFlag reports whether some token after the program path is exactly
// "--" followed by long, with underscores in long read as hyphens.
func HasLongFlag(args []string, long string) bool {
	if long == "" {
		return false
	}
	return common.ArgsIndexOf(common.SkipProgram(args), LongName(long).LongToken()) >= 0
}

// HasExactFlag reports whether -short or --long appears verbatim after the
// program path. Unlike HasFlag it does not expand flag groups.
func HasExactFlag(args []string, name Name) bool {
	rest := common.SkipProgram(args)
	if tok := name.ShortToken(); tok != "" && common.ArgsIndexOf(rest, tok) >= 0 {
		return true
	}
	if tok := name.LongToken(); tok != "" && common.ArgsIndexOf(rest, tok) >= 0 {
		return true
	}
	return false
}
