package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/output"
)

func newPinCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage pinned directories",
		Long: `Pin maintains a small ordered list of directories for quick access,
separate from aliases. Pinned paths must exist and be directories.`,
	}

	cmd.AddCommand(newPinAddCmd(root))
	cmd.AddCommand(newPinListCmd(root))
	cmd.AddCommand(newPinRemoveCmd(root))

	return cmd
}

func newPinAddCmd(root *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Pin a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			if name == "" {
				name = args[0]
			}
			entry, err := app.pins.Add(name, args[0])
			if err != nil {
				return errors.Wrap(errors.CodePin, err).
					WithSuggestion("pins must point at existing directories")
			}
			if err := app.savePins(); err != nil {
				return err
			}

			slog.Info("pin_added", slog.String("name", entry.Name), slog.String("path", entry.Path))
			output.New(cmd.OutOrStdout()).Successf("pinned %s (%s)", entry.Name, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the path)")

	return cmd
}

func newPinListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			output.New(cmd.OutOrStdout()).QuickAccess(app.pins.Entries())
			return nil
		},
	}
}

func newPinRemoveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Unpin a directory by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			if err := app.pins.RemoveByID(args[0]); err != nil {
				return errors.Wrap(errors.CodePin, err).
					WithSuggestion("run 'pathmark pin list' to see pin IDs")
			}
			if err := app.savePins(); err != nil {
				return err
			}

			slog.Info("pin_removed", slog.String("id", args[0]))
			output.New(cmd.OutOrStdout()).Successf("unpinned %s", args[0])
			return nil
		},
	}
}
