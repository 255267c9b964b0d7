package cmd

import (
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <path>",
	Short: "Toggle a checkmark menu item and report the new state",
	Long: `Resolve a checkmark menu item, press it, and re-read the menu until the
checkmark change is observed. When no re-read confirms the change the
reported state is the assumed flip, marked confirmed: false.`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
	toggleCmd.Flags().Bool("dry-run", false, "Show current state without toggling")
}

func runToggle(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	pid, nodes, err := buildTreeForApp(provider, app, menu.TreeOptions{})
	if err != nil {
		return err
	}

	node, err := menu.Resolve(nodes, args[0])
	if err != nil {
		return err
	}
	if len(node.Children) > 0 {
		return &menu.NotToggleableError{Path: node.Path}
	}

	checkedBefore := node.Checked
	if dryRun {
		return output.WriteToggle(output.ToggleResult{
			Path:          node.Path,
			CheckedBefore: checkedBefore,
			CheckedAfter:  checkedBefore,
			Confirmed:     true,
			DryRun:        true,
		})
	}

	done := logging.Timed("press_node", "path", node.Path)
	err = menu.Press(node)
	done()
	if err != nil {
		return err
	}

	done = logging.Timed("confirm_toggle", "path", node.Path)
	conf := menu.ConfirmToggle(func() ([]menu.Node, error) {
		return menu.BuildTree(provider.Roots, pid, menu.TreeOptions{})
	}, node.Path, checkedBefore)
	done()

	return output.WriteToggle(output.ToggleResult{
		Path:          node.Path,
		CheckedBefore: checkedBefore,
		CheckedAfter:  conf.CheckedAfter,
		Confirmed:     conf.Confirmed,
		DryRun:        false,
	})
}
