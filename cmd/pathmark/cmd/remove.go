package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/output"
)

func newRemoveCmd(root *rootOptions) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			var removeErr error
			if byID {
				removeErr = app.aliases.RemoveByID(args[0])
			} else {
				removeErr = app.aliases.RemoveByName(args[0])
			}
			if removeErr != nil {
				return errors.Wrap(errors.CodeAlias, removeErr).
					WithSuggestion("run 'pathmark list' to see existing aliases")
			}
			if err := app.saveAliases(); err != nil {
				return err
			}

			slog.Info("alias_removed", slog.String("ref", args[0]))
			output.New(cmd.OutOrStdout()).Successf("removed %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as an alias ID instead of a name")

	return cmd
}
