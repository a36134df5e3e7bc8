package common

import "strings"

// Hyphenate translates underscores in a long name to the hyphens used on the
// command line (e.g. "my_arg" -> "my-arg").
func Hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// IsShortToken reports whether arg starts with exactly one hyphen.
func IsShortToken(arg string) bool {
	return strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--")
}

// SkipProgram drops the program path at index 0, if any.
func SkipProgram(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}
