package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathmark-dev/pathmark/internal/output"
)

type searchOptions struct {
	limit  int
	format string
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Resolve a query against your aliases",
		Long: `Search ranks aliases against a free-text query. Exact and prefix name
matches come first, then fuzzy matches over names, paths, and tags.
Multi-word queries also match against path components, so "work docs"
finds /home/you/work/docs even without an alias named that way.

Examples:
  pathmark search docs
  pathmark search "work docs" --limit 5
  pathmark search downloads --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			app, err := loadApp(cmd.Context(), root)
			if err != nil {
				return err
			}

			if opts.limit > 0 {
				app.engine.SetMaxResults(opts.limit)
			}

			results := app.engine.Search(query)
			slog.Info("search_complete",
				slog.String("query", query),
				slog.Int("results", len(results)))

			switch opts.format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case "text":
				output.New(cmd.OutOrStdout()).Results(results)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", opts.format)
			}
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}
