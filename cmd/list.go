package cmd

import (
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all menu items for an application",
	Long:  "Walk an application's menu bar and print its items, flat with full paths by default or nested with --tree.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
	listCmd.Flags().Bool("flat", false, "Output as flat list with full path notation (default)")
	listCmd.Flags().Bool("tree", false, "Output as nested tree")
	listCmd.Flags().Bool("enabled-only", false, "Only include enabled (clickable) items")
	listCmd.Flags().Bool("include-alternates", false, "Include Option-key alternate items")
	listCmd.Flags().Int("depth", 0, "Maximum recursion depth (0 = unlimited)")
	listCmd.MarkFlagsMutuallyExclusive("flat", "tree")
}

func runList(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	flat, _ := cmd.Flags().GetBool("flat")
	tree, _ := cmd.Flags().GetBool("tree")
	enabledOnly, _ := cmd.Flags().GetBool("enabled-only")
	includeAlternates, _ := cmd.Flags().GetBool("include-alternates")
	depth, _ := cmd.Flags().GetInt("depth")

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	_, nodes, err := buildTreeForApp(provider, app, menu.TreeOptions{
		MaxDepth:          depth,
		IncludeAlternates: includeAlternates,
	})
	if err != nil {
		return err
	}

	if tree && !flat {
		return output.WriteTree(output.NewTree(nodes))
	}

	items := menu.Flatten(nodes)
	if enabledOnly {
		kept := items[:0]
		for _, item := range items {
			if item.Enabled {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	return output.WriteItems(output.NewItems(items))
}
