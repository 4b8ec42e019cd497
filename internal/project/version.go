package project

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DeriveVersionCode computes an integer version code from a version name.
// A semver-like name maps to major*10000 + minor*100 + patch; anything that
// does not parse, or maps to zero, yields "1".
func DeriveVersionCode(versionName string) string {
	v, err := parseSemver(versionName)
	if err != nil {
		return "1"
	}
	code := v.Major()*10000 + v.Minor()*100 + v.Patch()
	if code == 0 {
		return "1"
	}
	return strconv.FormatUint(code, 10)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
