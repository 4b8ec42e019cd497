// Package cli defines the Cobra command tree for the paw CLI. Each file
// in this package registers one top-level command (generate, build, doctor,
// etc.) with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing and output.
package cli
