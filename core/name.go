package core

import (
	"os"

	"github.com/chriso345/ezcli/internal/common"
)

// ProcessArgs returns the arguments of the running process. It is the only
// place os.Args is read. Mockable for testing.
var ProcessArgs = func() []string { return os.Args }

// Name is the short and/or long form a flag or option is looked up by.
//
// Short is a single, unprefixed identifier (e.g. "v" for -v). Long is an
// unprefixed multi-character identifier (e.g. "my_arg" for --my-arg);
// underscores are translated to hyphens before matching. An empty field is
// unset, and a Name with neither field set never matches.
type Name struct {
	Short string
	Long  string
}

// NewName returns a Name accepting both --long and -short.
func NewName(long, short string) Name {
	return Name{Short: short, Long: long}
}

// LongName returns a Name accepting only --long.
func LongName(long string) Name {
	return Name{Long: long}
}

// ShortName returns a Name accepting only -short.
func ShortName(short string) Name {
	return Name{Short: short}
}

// WithLong returns a copy of n with the long form set.
func (n Name) WithLong(long string) Name {
	n.Long = long
	return n
}

// WithShort returns a copy of n with the short form set.
func (n Name) WithShort(short string) Name {
	n.Short = short
	return n
}

// IsZero reports whether neither form is set.
func (n Name) IsZero() bool {
	return n.Short == "" && n.Long == ""
}

// LongToken returns the long form as it appears on the command line, or ""
// when unset.
func (n Name) LongToken() string {
	if n.Long == "" {
		return ""
	}
	return "--" + common.Hyphenate(n.Long)
}

// ShortToken returns the short form as it appears on the command line, or ""
// when unset.
func (n Name) ShortToken() string {
	if n.Short == "" {
		return ""
	}
	return "-" + n.Short
}

func (n Name) String() string {
	switch {
	case n.Short != "" && n.Long != "":
		return n.ShortToken() + ", " + n.LongToken()
	case n.Short != "":
		return n.ShortToken()
	default:
		return n.LongToken()
	}
}
