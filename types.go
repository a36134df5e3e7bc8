package ezcli

import (
	"github.com/chriso345/ezcli/core"
	"github.com/chriso345/ezcli/display"
)

// Name is the short and/or long form used to look up a flag or option.
//
// Short is a single unprefixed identifier ("v" for -v). Long is unprefixed
// and may use underscores, which are read as hyphens ("dry_run" for
// --dry-run). A Name with neither set never matches.
//
// Usage:
//
//	ezcli.NewName("dry_run", "n")            // -n or --dry-run
//	ezcli.LongName("dry_run")                // --dry-run
//	ezcli.ShortName("n").WithLong("dry_run") // -n or --dry-run
type Name = core.Name

// Arg documents a flag or option for help output.
//
// Leave Value and Choices empty for a flag. Set Value to name a free value
// ("<VALUE>") or Choices to list the accepted values ("[fast|slow]").
type Arg = display.Arg

// NewName returns a Name accepting --long and -short.
func NewName(long, short string) Name { return core.NewName(long, short) }

// LongName returns a Name accepting only --long.
func LongName(long string) Name { return core.LongName(long) }

// ShortName returns a Name accepting only -short.
func ShortName(short string) Name { return core.ShortName(short) }
