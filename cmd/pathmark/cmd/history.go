package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/output"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var limit int
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently opened paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			if clear {
				app.history.Clear()
				if err := app.saveHistory(); err != nil {
					return err
				}
				out.Success("history cleared")
				return nil
			}

			out.History(app.history.Recent(limit))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of entries")
	cmd.Flags().BoolVar(&clear, "clear", false, "Discard the whole history")

	return cmd
}
