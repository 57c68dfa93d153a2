package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/cmd/swiftpoet/commands"
	"github.com/teranos/swiftpoet/logger"
)

var rootCmd = &cobra.Command{
	Use:   "swiftpoet",
	Short: "swiftpoet - Generate Swift source from declarative manifests",
	Long: `swiftpoet - Generate Swift source code from declarative manifests.

A manifest (YAML, TOML or JSON) describes Swift files: imports, classes,
structs, protocols, enums, extensions, functions and variables. swiftpoet
renders them with consistent indentation and can verify that checked-in
files still match.

Available commands:
  render  - Render manifests to .swift files
  check   - Verify generated files are up to date
  am      - Manage swiftpoet configuration ("I am")
  version - Show version information

Examples:
  swiftpoet render model.yaml -o Sources/Generated
  swiftpoet check model.yaml --against Sources/Generated
  swiftpoet am show`,
	SilenceErrors:     true,
	PersistentPreRunE: commands.Setup,
}

func init() {
	commands.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
