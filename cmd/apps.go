package cmd

import (
	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running applications with their PIDs",
	Long:  "List running applications that own a regular UI, sorted by name. Works without Accessibility permission.",
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().Bool("frontmost", false, "Show only the frontmost application")
}

func runApps(cmd *cobra.Command, args []string) error {
	// App enumeration goes through the workspace, not the accessibility
	// API, so no permission gate here.
	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}

	apps, err := provider.Apps.RunningApps()
	if err != nil {
		return err
	}

	frontmost, _ := cmd.Flags().GetBool("frontmost")
	if frontmost {
		kept := make([]ax.AppInfo, 0, 1)
		for _, app := range apps {
			if app.Frontmost {
				kept = append(kept, app)
			}
		}
		apps = kept
	}

	return output.WriteApps(apps)
}
