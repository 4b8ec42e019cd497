package cli

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/paw-tools/paw/internal/config"
	"github.com/paw-tools/paw/internal/icon"
	"github.com/paw-tools/paw/internal/project"
	"github.com/spf13/cobra"
)

var checkConfig string

func init() {
	doctorCmd.Flags().StringVar(&checkConfig, "check-config", "", "Validate a project configuration document at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the paw environment",
	Long: `Report which icon rasterizer will be used and whether it is available.
With --check-config, also validate a project configuration document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd.OutOrStdout())

		p.heading("Settings")
		p.item("file: " + config.FilePath())
		p.item("log_level: " + config.LogLevel())

		p.heading("Rasterizer")
		checkRasterizer(p, config.Rasterizer(), config.RasterizerArgs())

		if checkConfig != "" {
			p.heading("Configuration")
			return runConfigCheck(p, checkConfig)
		}
		return nil
	},
}

func checkRasterizer(p *printer, tool string, args []string) {
	switch tool {
	case "", icon.SelectAuto:
		p.ok("builtin resampler for .png/.jpg sources")
		checkTool(p, icon.DefaultTool, args)
	case icon.SelectBuiltin:
		p.ok("builtin resampler (vector sources are not supported)")
	default:
		checkTool(p, tool, args)
	}
}

func checkTool(p *printer, tool string, args []string) {
	bin, err := exec.LookPath(tool)
	if err != nil {
		p.miss("%s not found in PATH; icons from vector sources will fail", tool)
		return
	}
	if len(args) == 0 {
		args = icon.DefaultArgs(tool)
	}
	p.ok("%s (%s)", tool, bin)
	p.item("args: " + strings.Join(args, " "))
}

func runConfigCheck(p *printer, path string) error {
	cfg, err := project.Load(path)
	if err != nil {
		var ce *project.ConfigError
		var pe *project.InvalidPathError
		switch {
		case errors.As(err, &ce) && len(ce.Issues) > 0:
			p.miss("%s: %s", path, ce.Message)
			for _, issue := range ce.Issues {
				p.item(issue.Path + ": " + issue.Message)
			}
		case errors.As(err, &pe):
			p.miss("%s: %s does not resolve: %v", path, pe.Field, pe.Err)
		default:
			p.miss("%v", err)
		}
		return fmt.Errorf("configuration %s is invalid", path)
	}

	p.ok("%s", cfg.Source)
	values := cfg.Values()
	for _, key := range project.Keys {
		if value := values[key]; value != "" {
			p.item(key + " = " + value)
		}
	}
	return nil
}
