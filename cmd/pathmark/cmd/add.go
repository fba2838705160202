package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/output"
)

func newAddCmd(root *rootOptions) *cobra.Command {
	var tags []string
	var color string
	var favorite bool

	cmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Create an alias for a path",
		Long: `Add creates a named shortcut to a filesystem path.

Examples:
  pathmark add docs ~/Documents
  pathmark add proj ~/code/project --tags work,go --favorite
  pathmark add dl ~/Downloads --color "#10B981"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(path)
			if err == nil {
				path = filepath.Clean(abs)
			}

			a, err := app.aliases.Add(name, path, tags, color, favorite)
			if err != nil {
				return errors.Wrap(errors.CodeAlias, err).
					WithSuggestion("pick a different name or remove the existing alias first")
			}
			if err := app.saveAliases(); err != nil {
				return err
			}

			slog.Info("alias_added", slog.String("name", name), slog.String("path", path))
			output.New(cmd.OutOrStdout()).Successf("added %s -> %s", a.Name, a.Path)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex, e.g. #3B82F6)")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark as favorite (boosts ranking)")

	return cmd
}
