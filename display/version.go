package display

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/chriso345/ezcli/errors"
)

// readBuildInfo is mockable for testing.
var readBuildInfo = debug.ReadBuildInfo

// BuildVersion returns "name vVERSION". A leading "v" in version is not
// repeated. An empty version is inferred from the build info of the main
// module; if none is available, "No version specified" is returned.
func BuildVersion(name, version string) string {
	if name != "" {
		name = name + " "
	}

	if version == "" {
		infered, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = infered
	}

	return fmt.Sprintf("%sv%s", name, strings.TrimPrefix(version, "v"))
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := readBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
