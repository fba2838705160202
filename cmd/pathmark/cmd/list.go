package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/output"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var favoritesOnly bool
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List aliases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			aliases := app.aliases.Aliases()
			if favoritesOnly {
				aliases = app.aliases.Favorites()
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(aliases)
			case "text":
				output.New(cmd.OutOrStdout()).Aliases(aliases)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only favorites")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}
