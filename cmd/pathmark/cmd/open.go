package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
)

func newOpenCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <name-or-query>",
		Short: "Resolve an alias and print its path",
		Long: `Open resolves an alias and prints its path on stdout, recording the
access so the entry ranks higher in future searches. The argument is
matched by exact name first, then by search ranking.

Shell integration:
  cd "$(pathmark open docs)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			a, ok := app.aliases.FindByName(args[0])
			if !ok {
				results := app.engine.Search(args[0])
				if len(results) == 0 {
					return errors.New(errors.CodeAlias, "nothing matches "+args[0]).
						WithSuggestion("run 'pathmark list' to see existing aliases")
				}
				a = results[0].Alias
			}

			if err := app.aliases.Touch(a.ID); err != nil {
				return errors.Wrap(errors.CodeAlias, err)
			}
			app.history.Record(a.Path)
			if err := app.saveAliases(); err != nil {
				return err
			}
			if err := app.saveHistory(); err != nil {
				return err
			}

			slog.Info("alias_opened", slog.String("name", a.Name), slog.String("path", a.Path))
			fmt.Fprintln(cmd.OutOrStdout(), a.Path)
			return nil
		},
	}
}
