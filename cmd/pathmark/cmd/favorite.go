package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/output"
)

func newFavoriteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <name>",
		Short: "Toggle an alias's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			a, ok := app.aliases.FindByName(args[0])
			if !ok {
				return errors.New(errors.CodeAlias, "alias not found: "+args[0]).
					WithSuggestion("run 'pathmark list' to see existing aliases")
			}

			on, err := app.aliases.ToggleFavorite(a.ID)
			if err != nil {
				return errors.Wrap(errors.CodeAlias, err)
			}
			if err := app.saveAliases(); err != nil {
				return err
			}

			slog.Info("favorite_toggled", slog.String("name", a.Name), slog.Bool("favorite", on))
			out := output.New(cmd.OutOrStdout())
			if on {
				out.Successf("%s is now a favorite", a.Name)
			} else {
				out.Successf("%s is no longer a favorite", a.Name)
			}
			return nil
		},
	}
}
