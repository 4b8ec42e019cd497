package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/paw-tools/paw/internal/config"
	"github.com/paw-tools/paw/internal/icon"
	"github.com/paw-tools/paw/internal/project"
	"github.com/paw-tools/paw/internal/scaffold"
	"github.com/spf13/cobra"
)

var genFlags project.Flags

// projectFlagNames are only valid together with --package.
var projectFlagNames = []string{"name", "copy-from", "icon", "version-code", "version-name"}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.PackageName, "package", "", "Java package name; skips the configuration document")
	f.StringVar(&genFlags.ApplicationName, "name", "", "Application name (default: last package segment)")
	f.StringVar(&genFlags.CopyFrom, "copy-from", "", "Directory of web assets to bundle")
	f.StringVar(&genFlags.SVGIcon, "icon", "", "Icon source for launcher icons")
	f.StringVar(&genFlags.VersionCode, "version-code", "", "Integer version code")
	f.StringVar(&genFlags.VersionName, "version-name", "", "Version name (default: 1.0)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <config-path> <output-path>",
	Short: "Generate an Android WebView project",
	Long: `Generate an Android WebView project from the [paw] section of a configuration
document (.toml, .yaml or .json). Relative paths in the document are resolved
against the document's directory.

With --package the document is skipped and the project is described by flags;
relative paths are then resolved against the working directory.

Examples:
  paw generate paw.toml ./android
  paw generate ./android --package com.example.app --copy-from ./web --icon icon.svg`,
	Args: func(cmd *cobra.Command, args []string) error {
		if genFlags.PackageName != "" {
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, outputDir, err := resolveProject(cmd, args)
	if err != nil {
		return err
	}

	log := logger.Named("generate")
	log.Debug("project resolved", "package", cfg.PackageName, "source", cfg.Source, "output", outputDir)

	r := icon.Dispatch(config.Rasterizer(), config.RasterizerArgs())
	g := scaffold.New(scaffold.WithRasterizer(r), scaffold.WithLogger(log))

	result, err := g.Generate(cmd.Context(), cfg, outputDir)
	if result != nil {
		printResult(newPrinter(cmd.OutOrStdout()), result)
	}
	if err != nil {
		if errors.Is(err, icon.ErrExternalTool) {
			return fmt.Errorf("%w (set a different tool with '%s config set rasterizer <tool>')", err, rootCmd.Name())
		}
		return err
	}
	return nil
}

// resolveProject builds the project configuration from either a document or
// flags and returns it with the output directory.
func resolveProject(cmd *cobra.Command, args []string) (*project.ProjectConfig, string, error) {
	if genFlags.PackageName == "" {
		for _, name := range projectFlagNames {
			if cmd.Flags().Changed(name) {
				return nil, "", fmt.Errorf("--%s requires --package", name)
			}
		}
		cfg, err := project.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		return cfg, args[1], nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := project.FromFlags(genFlags, wd)
	if err != nil {
		return nil, "", err
	}
	return cfg, args[0], nil
}

func printResult(p *printer, result *scaffold.Result) {
	p.heading("Generated %s", result.OutputDir)
	for _, f := range result.Files {
		p.item(f)
	}
	for _, w := range result.Warnings {
		p.warn("%s", w)
	}
}
