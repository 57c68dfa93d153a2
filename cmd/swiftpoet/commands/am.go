package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/display"
	"github.com/teranos/swiftpoet/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = newAmCmd()

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage swiftpoet configuration",
		Long: `Display and manage swiftpoet configuration ("I am").

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SWIFTPOET_* prefix)
3. Project config (nearest poet.toml, or --config)
4. User config (~/.swiftpoet/poet.toml)
5. Default values

Examples:
  swiftpoet am show              # Show settings and where they come from
  swiftpoet am show --json       # Same, as JSON
  swiftpoet am get emit.indent   # Get a specific value
  swiftpoet am init              # Write a default poet.toml here`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration and its sources",
		Args:  cobra.NoArgs,
		RunE:  runAmShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., emit.indent, output.dir)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAmGet,
	})

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default poet.toml",
		Long: `Write the default configuration to path (default: ./poet.toml).

An existing file is kept as path.back1, with older copies rotated to
.back2 and .back3.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAmInit,
	}
	cmd.AddCommand(initCmd)
	return cmd
}

func runAmShow(cmd *cobra.Command, args []string) error {
	ci := am.Introspect(am.GetViper())
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), ci)
	}
	display.Settings(cmd.OutOrStdout(), ci)
	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.WithHint(
			errors.NewNotFoundError("configuration key %q", key),
			"run swiftpoet am show to list every key",
		)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{"key": key, "value": v.Get(key)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	written, err := am.WriteDefault(path)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]string{"path": written})
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("Wrote %s\n", written)
	return nil
}
