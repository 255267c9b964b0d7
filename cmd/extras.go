package cmd

import (
	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var extrasCmd = &cobra.Command{
	Use:   "extras",
	Short: "List menu bar extras (status items)",
	Long: `List the status items an application shows on the right side of the menu
bar, with their menus. --all scans every running application and reports
the ones that own extras.`,
	RunE: runExtras,
}

func init() {
	rootCmd.AddCommand(extrasCmd)
	extrasCmd.Flags().String("app", "", "Target application: name, PID, or bundle ID (default: frontmost)")
	extrasCmd.Flags().Bool("all", false, "Scan every running application")
	extrasCmd.Flags().Bool("tree", false, "Output as nested tree")
	extrasCmd.Flags().Bool("include-alternates", false, "Include Option-key alternate items")
	extrasCmd.Flags().Int("depth", 0, "Maximum recursion depth (0 = unlimited)")
	extrasCmd.MarkFlagsMutuallyExclusive("all", "app")
}

func runExtras(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	all, _ := cmd.Flags().GetBool("all")
	tree, _ := cmd.Flags().GetBool("tree")
	includeAlternates, _ := cmd.Flags().GetBool("include-alternates")
	depth, _ := cmd.Flags().GetInt("depth")

	provider, err := requireProvider()
	if err != nil {
		return err
	}

	opts := menu.TreeOptions{
		MaxDepth:          depth,
		IncludeAlternates: includeAlternates,
	}

	var results []menu.ExtrasResult
	if all {
		done := logging.Timed("build_all_extras")
		results = menu.BuildAllExtras(provider.Apps, provider.Roots, opts)
		done()
	} else {
		pid, err := ax.ResolveTarget(provider.Apps, app)
		if err != nil {
			return err
		}
		done := logging.Timed("build_extras_tree", "pid", pid)
		nodes, err := menu.BuildExtrasTree(provider.Roots, pid, opts)
		done()
		if err != nil {
			return err
		}
		results = []menu.ExtrasResult{{
			AppName: appNameForPID(provider.Apps, pid),
			AppPID:  pid,
			Nodes:   nodes,
		}}
	}

	if tree {
		groups := make([]output.ExtrasTreeGroup, len(results))
		for i, r := range results {
			groups[i] = output.ExtrasTreeGroup{
				App:      r.AppName,
				PID:      r.AppPID,
				Children: output.NewTree(r.Nodes),
			}
		}
		return output.WriteExtrasTree(groups)
	}

	groups := make([]output.ExtrasGroup, len(results))
	for i, r := range results {
		groups[i] = output.ExtrasGroup{
			App:   r.AppName,
			PID:   r.AppPID,
			Items: output.NewItems(menu.Flatten(r.Nodes)),
		}
	}
	return output.WriteExtras(groups)
}
