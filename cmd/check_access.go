package cmd

import (
	"fmt"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/output"
	"github.com/spf13/cobra"
)

const permissionInstructions = `To grant Accessibility permission:
  1. Open System Settings → Privacy & Security → Accessibility
  2. Click the + button and add your terminal application
  3. Restart your terminal

  Or run: open "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"`

var checkAccessCmd = &cobra.Command{
	Use:   "check-access",
	Short: "Check if Accessibility permission is granted",
	Long:  "Check whether this process is trusted for Accessibility access. Exits 0 when trusted, 3 when not.",
	RunE:  runCheckAccess,
}

func init() {
	rootCmd.AddCommand(checkAccessCmd)
}

func runCheckAccess(cmd *cobra.Command, args []string) error {
	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}
	if provider.Trust == nil || !provider.Trust.IsTrusted() {
		return ax.ErrNotTrusted
	}

	switch output.OutputFormat {
	case output.FormatJSON, output.FormatCompact, output.FormatNDJSON:
		fmt.Println(`{"ok":true,"message":"Accessibility permission granted"}`)
	default:
		fmt.Println("Accessibility permission granted.")
		fmt.Println(permissionInstructions)
	}
	return nil
}
