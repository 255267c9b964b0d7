package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/menucli/internal/config"
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/output"
	"github.com/mj1618/menucli/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "menucli",
	Short:         "Query and interact with macOS app menu bars",
	Long:          "A CLI tool that inspects, searches, and activates application menu items via the macOS accessibility APIs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// cfg holds file and environment defaults, loaded before every command.
var cfg *config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.WriteError(err)
		os.Exit(output.ExitCode(err))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: auto, json, compact, ndjson, yaml, table, path, id")
	rootCmd.PersistentFlags().Bool("json", false, "Shorthand for --format json")
	rootCmd.PersistentFlags().String("fields", "", "Comma-separated field names to include in table output")
	rootCmd.PersistentFlags().Bool("no-header", false, "Omit table headers (useful for awk/cut processing)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print timing and diagnostics to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Use the root persistent flags directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		if format == "" {
			format = string(output.FormatAuto)
		}
		if !output.ValidFormat(format) {
			return fmt.Errorf("unsupported format: %s (use auto, json, compact, ndjson, yaml, table, path, or id)", format)
		}
		jsonFlag, _ := rootCmd.PersistentFlags().GetBool("json")
		output.OutputFormat = output.ResolveFormat(output.Format(format), jsonFlag)

		fields, _ := rootCmd.PersistentFlags().GetString("fields")
		output.Fields = output.ParseFields(fields)

		noHeader, _ := rootCmd.PersistentFlags().GetBool("no-header")
		output.NoHeader = noHeader || cfg.NoHeader

		debug, _ := rootCmd.PersistentFlags().GetBool("debug")
		logging.Setup(debug || cfg.Debug)
		return nil
	}
}
