package cmd

import (
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state <path>",
	Short: "Get the current state of a specific menu item",
	Long:  "Resolve a menu item by path or free text and print its enabled, checked, and shortcut state.",
	Args:  cobra.ExactArgs(1),
	RunE:  runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
}

func runState(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	_, nodes, err := buildTreeForApp(provider, app, menu.TreeOptions{})
	if err != nil {
		return err
	}

	node, err := menu.Resolve(nodes, args[0])
	if err != nil {
		return err
	}

	return output.WriteItems([]output.Item{output.NodeItem(node)})
}
