package cmd

import (
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search menu items by title",
	Long:  "Fuzzy-search an application's menu items over their full paths. An empty query returns the first items in menu order.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
	searchCmd.Flags().Int("limit", 0, "Maximum number of results (default from config, 10)")
	searchCmd.Flags().Bool("exact", false, "Use exact substring match instead of fuzzy")
	searchCmd.Flags().Bool("case-sensitive", false, "Case-sensitive matching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	limit, _ := cmd.Flags().GetInt("limit")
	exact, _ := cmd.Flags().GetBool("exact")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")

	if limit <= 0 {
		limit = menu.DefaultSearchLimit
		if cfg != nil && cfg.Search.Limit > 0 {
			limit = cfg.Search.Limit
		}
	}

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	_, nodes, err := buildTreeForApp(provider, app, menu.TreeOptions{})
	if err != nil {
		return err
	}

	done := logging.Timed("search", "query", args[0])
	results := menu.Search(menu.Flatten(nodes), args[0], menu.SearchOptions{
		Limit:         limit,
		Exact:         exact,
		CaseSensitive: caseSensitive,
	})
	done()

	return output.WriteSearchResults(output.NewSearchResults(results))
}
