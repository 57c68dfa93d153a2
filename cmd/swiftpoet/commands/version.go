package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/display"
	"github.com/teranos/swiftpoet/internal/version"
)

// VersionCmd represents the version command
var VersionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show swiftpoet version information",
		Long:  `Display the swiftpoet version, its build, the manifest schemas it reads and the platform.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, info)
			}
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Manifest schema: %s\n", info.ManifestSchema)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
