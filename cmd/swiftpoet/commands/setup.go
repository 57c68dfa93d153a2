// Package commands implements the swiftpoet subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/display"
	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
	"github.com/teranos/swiftpoet/manifest"
	"github.com/teranos/swiftpoet/output"
	"github.com/teranos/swiftpoet/poet"
)

// Persistent flags defined on the root command.
const (
	FlagVerbose = "verbose"
	FlagJSON    = "json"
	FlagConfig  = "config"
)

// AddPersistentFlags registers the global flags on root.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().CountP(FlagVerbose, "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool(FlagJSON, false, "Output results as JSON")
	root.PersistentFlags().String(FlagConfig, "", "Config file (default: nearest poet.toml, then ~/.swiftpoet/poet.toml)")
}

// Setup loads configuration and initializes the global logger. It is the
// root command's PersistentPreRunE.
func Setup(cmd *cobra.Command, args []string) error {
	verbose := verbosity(cmd)

	// version and am init must work even with a broken poet.toml
	if cmd.Name() == "version" || (cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "am") {
		return logger.Initialize(false, verbose)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	logger.Debugw("Configuration loaded",
		"indent", fmt.Sprintf("%q", cfg.Emit.Indent),
		logger.FieldDir, cfg.Output.Dir,
		"verbosity", logger.LevelName(verbose))

	// Settings go to stderr so results on stdout stay parseable
	if logger.ShouldOutput(verbose, logger.OutputConfig) {
		display.Settings(cmd.ErrOrStderr(), am.Introspect(nil))
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	if path, _ := cmd.Root().PersistentFlags().GetString(FlagConfig); path != "" {
		return am.LoadFromFile(path)
	}
	return am.Load()
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Root().PersistentFlags().GetCount(FlagVerbose)
	return v
}

// ReportError writes err and any hints attached to it.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// buildFiles loads every manifest and builds its files. No two files may be
// written under the same name, within a manifest or across manifests.
func buildFiles(fs afero.Fs, paths []string, writer *output.Writer, verbose int) ([]*poet.SourceFile, error) {
	manifests, err := manifest.LoadAll(fs, paths)
	if err != nil {
		return nil, err
	}

	var files []*poet.SourceFile
	owner := make(map[string]string)
	for _, m := range manifests {
		built, err := m.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "manifest %s", m.Path)
		}
		for _, f := range built {
			name := writer.FileName(f)
			if prev, ok := owner[name]; ok {
				return nil, errors.NewInvalidRequestError("%s and %s both render %s", prev, m.Path, name)
			}
			owner[name] = m.Path

			if logger.ShouldOutput(verbose, logger.OutputInternal) {
				logger.Debugw("Built file",
					logger.FieldFile, name,
					"imports", f.Imports(),
					"components", len(f.Components()))
			}
		}
		files = append(files, built...)
		if logger.ShouldOutput(verbose, logger.OutputProgress) {
			logger.Infow("Built manifest", logger.FieldManifest, m.Path, logger.FieldCount, len(built))
		}
	}
	return files, nil
}

// newOutputWriter applies configuration and flag overrides to an output.Writer.
func newOutputWriter(cmd *cobra.Command, fs afero.Fs, cfg *am.Config) (*output.Writer, error) {
	effective := *cfg
	if cmd.Flags().Lookup("indent") != nil && cmd.Flags().Changed("indent") {
		effective.Emit.Indent, _ = cmd.Flags().GetString("indent")
	}
	if cmd.Flags().Lookup("overwrite") != nil && cmd.Flags().Changed("overwrite") {
		effective.Output.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	}
	if err := effective.Validate(); err != nil {
		return nil, err
	}

	w := output.NewWriter(fs, effective.Emit.Indent, effective.Output.Overwrite)
	w.Extension = effective.Emit.Extension
	return w, nil
}
