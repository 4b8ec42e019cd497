// Package project loads and normalizes the configuration of a generated
// application project. A configuration comes either from a document holding
// a single [paw] section (TOML, YAML or JSON) or from discrete command-line
// values; both paths produce the same immutable ProjectConfig, validated
// against an embedded JSON Schema.
package project
