package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/paw-tools/paw/internal/branding"
	"github.com/paw-tools/paw/internal/config"
	"github.com/paw-tools/paw/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	debugMode bool
	logger    = hclog.NewNullLogger()
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-debug", false, "Disable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "no-debug")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Android WebView application projects from a small
configuration document: a Gradle build script, a manifest, a launcher activity,
bundled web assets and launcher icons for every screen density.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		state := "off"
		level := config.LogLevel()
		if debugMode {
			state = "on"
			level = "debug"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Debug mode is %s\n", state)

		logger = logging.New(branding.CLIName(), level, cmd.ErrOrStderr())
	},
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running command through its context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
