package project

import "strings"

// SectionName is the configuration document section holding project fields.
const SectionName = "paw"

// Configuration keys. They double as template placeholder names.
const (
	KeyPackageName     = "package_name"
	KeyApplicationName = "application_name"
	KeyCopyFrom        = "copy_from"
	KeySVGIcon         = "svg_icon"
	KeyVersionCode     = "version_code"
	KeyVersionName     = "version_name"
)

// Keys lists every configuration key in document order.
var Keys = []string{
	KeyPackageName,
	KeyApplicationName,
	KeyCopyFrom,
	KeySVGIcon,
	KeyVersionCode,
	KeyVersionName,
}

// DefaultVersionName is used when the configuration omits version_name.
const DefaultVersionName = "1.0"

// ProjectConfig is the normalized input of a single generation run.
// Values are populated by Load or FromFlags and must not be modified afterwards.
type ProjectConfig struct {
	PackageName     string
	ApplicationName string
	CopyFrom        string // absolute path or empty
	SVGIcon         string // absolute path or empty
	VersionCode     string
	VersionName     string

	// Source is the configuration document path, or empty for flag input.
	Source string
}

// Values returns the placeholder substitution map for template rendering.
func (c *ProjectConfig) Values() map[string]string {
	return map[string]string{
		KeyPackageName:     c.PackageName,
		KeyApplicationName: c.ApplicationName,
		KeyCopyFrom:        c.CopyFrom,
		KeySVGIcon:         c.SVGIcon,
		KeyVersionCode:     c.VersionCode,
		KeyVersionName:     c.VersionName,
	}
}

// PackageSegments splits the package name into its dotted segments.
func (c *ProjectConfig) PackageSegments() []string {
	return strings.Split(c.PackageName, ".")
}
