// Package cmd provides the CLI commands for pathmark.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/logging"
	"github.com/pathmark-dev/pathmark/pkg/version"
)

type rootOptions struct {
	configPath string
	dataDir    string
	debug      bool
}

// NewRootCmd creates the root command for the pathmark CLI.
func NewRootCmd() *cobra.Command {
	var opts rootOptions
	var loggingCleanup func()

	cmd := &cobra.Command{
		Use:   "pathmark",
		Short: "Named shortcuts to your filesystem, with ranked search",
		Long: `Pathmark keeps user-defined aliases for filesystem paths and resolves
free-text queries against them: exact and prefix name matches first,
then fuzzy matches over names, paths, and tags, with favorites and
recently used entries boosted.

Examples:
  pathmark add docs ~/Documents --tags work --favorite
  pathmark search "work docs"
  pathmark open docs`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logCfg := logging.DefaultConfig()
			if opts.debug {
				logCfg = logging.DebugConfig()
			}
			_, cleanup, err := logging.Setup(logCfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			loggingCleanup = cleanup
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if loggingCleanup != nil {
				loggingCleanup()
			}
		},
	}

	cmd.SetVersionTemplate("pathmark version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path (default ~/.config/pathmark/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Data directory for alias, history, and pin files")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")

	cmd.AddCommand(newSearchCmd(&opts))
	cmd.AddCommand(newAddCmd(&opts))
	cmd.AddCommand(newListCmd(&opts))
	cmd.AddCommand(newRemoveCmd(&opts))
	cmd.AddCommand(newFavoriteCmd(&opts))
	cmd.AddCommand(newOpenCmd(&opts))
	cmd.AddCommand(newHistoryCmd(&opts))
	cmd.AddCommand(newPinCmd(&opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command, printing failures in user-facing form.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s\n", errors.FormatForUser(err))
		return err
	}
	return nil
}
