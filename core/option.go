package core

import "github.com/chriso345/ezcli/internal/common"

// OptionValue returns the token that follows the option named by name.
//
// The short form is looked up first. Only when that lookup finds nothing is
// the long form looked up, in a second, independent scan. If -s is passed as
// the last token and --long appears elsewhere with a value, the long value is
// returned. Use OptionValueSingleScan for a single left-to-right pass over
// both forms.
//
// The second return value is false when the option is missing, when it is
// the last token, or when name is zero.
func OptionValue(args []string, name Name) (string, bool) {
	if val, ok := ShortValue(args, name.Short); ok {
		return val, true
	}
	return LongValue(args, name.Long)
}

// OptionValueSingleScan returns the token following the first occurrence of
// either -short or --long, whichever comes first. If that occurrence is the
// last token the option is absent, even if the other form appears earlier
// with nothing after it or later with a value.
func OptionValueSingleScan(args []string, name Name) (string, bool) {
	short, long := name.ShortToken(), name.LongToken()
	rest := common.SkipProgram(args)
	for i, arg := range rest {
		if (short != "" && arg == short) || (long != "" && arg == long) {
			return valueAfter(rest, i)
		}
	}
	return "", false
}

// ShortValue returns the token following the first "-short" after the
// program path.
func ShortValue(args []string, short string) (string, bool) {
	return tokenValue(args, ShortName(short).ShortToken())
}

// LongValue returns the token following the first "--long" after the program
// path. Underscores in long are read as hyphens.
func LongValue(args []string, long string) (string, bool) {
	return tokenValue(args, LongName(long).LongToken())
}

func tokenValue(args []string, tok string) (string, bool) {
	if tok == "" {
		return "", false
	}
	rest := common.SkipProgram(args)
	i := common.ArgsIndexOf(rest, tok)
	if i < 0 {
		return "", false
	}
	return valueAfter(rest, i)
}

func valueAfter(args []string, i int) (string, bool) {
	if i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}
