package cmd

import (
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click <path>",
	Short: "Click (activate) a menu item",
	Long: `Resolve a menu item by path or free text and press it. The path accepts
exact "File::Save As…" notation, a unique title, or fuzzy text; --exact
disables the fuzzy fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
	clickCmd.Flags().Bool("dry-run", false, "Preview the resolved item without clicking it")
	clickCmd.Flags().Bool("exact", false, "Require exact path match (no fuzzy resolution)")
}

func runClick(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	exact, _ := cmd.Flags().GetBool("exact")

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	_, nodes, err := buildTreeForApp(provider, app, menu.TreeOptions{})
	if err != nil {
		return err
	}

	resolve := menu.Resolve
	if exact {
		resolve = menu.ResolveExact
	}
	node, err := resolve(nodes, args[0])
	if err != nil {
		return err
	}

	item := output.NodeItem(node)
	if dryRun {
		return output.WriteItems([]output.Item{item})
	}

	done := logging.Timed("press_node", "path", node.Path)
	err = menu.Press(node)
	done()
	if err != nil {
		return err
	}

	return output.WriteItems([]output.Item{item})
}
