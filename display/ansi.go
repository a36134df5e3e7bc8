package display

import "strings"

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

// NoColor disables ANSI styling of help output when set.
var NoColor = false

// ansiHelp wraps text in the given ANSI codes, followed by a reset.
func ansiHelp(text string, codes ...string) string {
	if NoColor || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}
