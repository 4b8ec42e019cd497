package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// javaKeywords cannot be used as package segments.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "false": true, "final": true, "finally": true,
	"float": true, "for": true, "goto": true, "if": true, "implements": true,
	"import": true, "instanceof": true, "int": true, "interface": true, "long": true,
	"native": true, "new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "short": true, "static": true,
	"strictfp": true, "super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "true": true, "try": true,
	"void": true, "volatile": true, "while": true, "_": true,
}

// packagePattern mirrors the package_name pattern of the embedded schema.
var packagePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// textKeys hold free text and must not be read as numbers or booleans.
var textKeys = []string{KeyPackageName, KeyApplicationName, KeyCopyFrom, KeySVGIcon, KeyVersionName}

// Flags carries project values given directly on the command line.
type Flags struct {
	PackageName     string
	ApplicationName string
	CopyFrom        string
	SVGIcon         string
	VersionCode     string
	VersionName     string
}

// Load reads the [paw] section of the configuration document at path.
// The format follows the file extension (.toml, .yaml, .yml, .json).
// YAML scalars are taken exactly as written, so version_name: 1.0 stays
// "1.0". In TOML and JSON, free-text fields must be quoted strings.
// Relative copy_from and svg_icon values are resolved against the
// document's own directory.
func Load(path string) (*ProjectConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "resolving path", Err: err}
	}

	var section map[string]any
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yaml", ".yml":
		section, err = readYAMLSection(abs)
	default:
		section, err = readSection(abs)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := normalize(section, filepath.Dir(abs), abs)
	if err != nil {
		return nil, err
	}
	cfg.Source = abs
	return cfg, nil
}

// readSection loads the section through viper and rejects free-text fields
// that the document typed as numbers, booleans or dates.
func readSection(abs string) (map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(abs)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: abs, Message: "reading document", Err: err}
	}

	if !v.InConfig(SectionName) {
		return nil, &ConfigError{Path: abs, Message: fmt.Sprintf("missing [%s] section", SectionName)}
	}

	section := v.GetStringMap(SectionName)
	for _, key := range textKeys {
		switch section[key].(type) {
		case nil, string, map[string]any, []any:
			// Strings pass; structured values are left to the schema.
		default:
			return nil, &ConfigError{
				Path:    abs,
				Field:   key,
				Message: fmt.Sprintf("value must be a quoted string, e.g. %s = \"...\"", key),
			}
		}
	}
	return section, nil
}

// readYAMLSection decodes the section node by node so that every scalar
// keeps its source text regardless of how YAML would type it.
func readYAMLSection(abs string) (map[string]any, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &ConfigError{Path: abs, Message: "reading document", Err: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Path: abs, Message: "parsing document", Err: err}
	}

	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolveAlias(root.Content[0])
	}

	var node *yaml.Node
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			if strings.EqualFold(root.Content[i].Value, SectionName) {
				node = resolveAlias(root.Content[i+1])
			}
		}
	}
	if node == nil {
		return nil, &ConfigError{Path: abs, Message: fmt.Sprintf("missing [%s] section", SectionName)}
	}
	if node.Kind != yaml.MappingNode {
		return nil, &ConfigError{Path: abs, Message: fmt.Sprintf("[%s] section must be a mapping", SectionName)}
	}

	section := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := strings.ToLower(node.Content[i].Value)
		val := resolveAlias(node.Content[i+1])
		switch {
		case val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null":
			continue
		case val.Kind == yaml.ScalarNode:
			section[key] = val.Value
		default:
			var decoded any
			if err := val.Decode(&decoded); err != nil {
				return nil, &ConfigError{Path: abs, Field: key, Message: "decoding value", Err: err}
			}
			section[key] = decoded
		}
	}
	return section, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// FromFlags builds a ProjectConfig from discrete values. Relative paths are
// resolved against baseDir. When no application name is given, the last
// package segment is used.
func FromFlags(f Flags, baseDir string) (*ProjectConfig, error) {
	section := make(map[string]any)
	set := func(key, value string) {
		if value != "" {
			section[key] = value
		}
	}
	set(KeyPackageName, f.PackageName)
	set(KeyApplicationName, f.ApplicationName)
	set(KeyCopyFrom, f.CopyFrom)
	set(KeySVGIcon, f.SVGIcon)
	set(KeyVersionCode, f.VersionCode)
	set(KeyVersionName, f.VersionName)

	if _, ok := section[KeyApplicationName]; !ok && f.PackageName != "" {
		if !packagePattern.MatchString(f.PackageName) {
			return nil, &ConfigError{
				Field:   KeyPackageName,
				Message: fmt.Sprintf("%q is not a dotted Java package name", f.PackageName),
			}
		}
		segments := strings.Split(f.PackageName, ".")
		section[KeyApplicationName] = segments[len(segments)-1]
	}

	return normalize(section, baseDir, "")
}

// normalize turns a raw section into a ProjectConfig. It is shared by the
// document and flag entry points.
func normalize(section map[string]any, baseDir, source string) (*ProjectConfig, error) {
	for _, key := range []string{KeyPackageName, KeyApplicationName} {
		if strings.TrimSpace(cast.ToString(section[key])) == "" {
			return nil, &ConfigError{Path: source, Field: key, Message: "required field is missing"}
		}
	}

	result, err := Validate(section)
	if err != nil {
		return nil, &ConfigError{Path: source, Message: "validating section", Err: err}
	}
	if !result.Valid {
		return nil, &ConfigError{Path: source, Message: "schema validation failed", Issues: result.Issues}
	}

	cfg := &ProjectConfig{
		PackageName:     cast.ToString(section[KeyPackageName]),
		ApplicationName: cast.ToString(section[KeyApplicationName]),
		CopyFrom:        resolvePath(baseDir, cast.ToString(section[KeyCopyFrom])),
		SVGIcon:         resolvePath(baseDir, cast.ToString(section[KeySVGIcon])),
		VersionCode:     cast.ToString(section[KeyVersionCode]),
		VersionName:     cast.ToString(section[KeyVersionName]),
	}

	for _, segment := range cfg.PackageSegments() {
		if javaKeywords[segment] {
			return nil, &ConfigError{
				Path:    source,
				Field:   KeyPackageName,
				Message: fmt.Sprintf("segment %q is a reserved word", segment),
			}
		}
	}

	if cfg.VersionName == "" {
		cfg.VersionName = DefaultVersionName
	}
	if cfg.VersionCode == "" {
		cfg.VersionCode = DeriveVersionCode(cfg.VersionName)
	}

	if err := CheckPaths(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CheckPaths verifies that copy_from is a directory and svg_icon a regular
// file. Empty values are skipped.
func CheckPaths(cfg *ProjectConfig) error {
	if cfg.CopyFrom != "" {
		info, err := os.Stat(cfg.CopyFrom)
		if err != nil {
			return &InvalidPathError{Field: KeyCopyFrom, Path: cfg.CopyFrom, Err: err}
		}
		if !info.IsDir() {
			return &InvalidPathError{Field: KeyCopyFrom, Path: cfg.CopyFrom, Err: errors.New("not a directory")}
		}
	}
	if cfg.SVGIcon != "" {
		info, err := os.Stat(cfg.SVGIcon)
		if err != nil {
			return &InvalidPathError{Field: KeySVGIcon, Path: cfg.SVGIcon, Err: err}
		}
		if !info.Mode().IsRegular() {
			return &InvalidPathError{Field: KeySVGIcon, Path: cfg.SVGIcon, Err: errors.New("not a regular file")}
		}
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	return filepath.Clean(p)
}
