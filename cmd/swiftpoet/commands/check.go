package commands

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/check"
	"github.com/teranos/swiftpoet/display"
	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
	"github.com/teranos/swiftpoet/output"
)

// ErrOutOfDate is returned by check when a generated file is stale or missing.
var ErrOutOfDate = errors.New("generated files are out of date")

// CheckCmd verifies checked-in files against a fresh render
var CheckCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <manifest>...",
		Short: "Verify generated files are up to date",
		Long: `Render manifests in memory and compare them with files on disk.

Exits non-zero when any file differs or is missing, printing a unified
diff for each. Surrounding whitespace on each line is ignored unless
--strict is given or check.ignore_whitespace is false. Lines starting with
one of check.ignore_prefixes, such as a generation timestamp, are skipped.

Examples:
  swiftpoet check model.yaml                     # Compare with ./generated
  swiftpoet check model.yaml --against Sources   # Compare with a directory
  swiftpoet check model.yaml --json              # Machine-readable result`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().String("against", "", "Directory holding the checked-in files (default: output.dir)")
	cmd.Flags().String("indent", "", "Indent unit (default: emit.indent)")
	cmd.Flags().Bool("strict", false, "Compare whitespace exactly")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	fs := afero.NewOsFs()

	writer, err := newOutputWriter(cmd, fs, cfg)
	if err != nil {
		return err
	}
	start := time.Now()
	files, err := buildFiles(fs, args, writer, verbosity(cmd))
	if err != nil {
		return err
	}

	rendered := make(map[string]string, len(files))
	for _, f := range files {
		content, err := output.Render(f, writer.Indent)
		if err != nil {
			return err
		}
		rendered[writer.FileName(f)] = content
	}

	dir := cfg.Output.Dir
	if against, _ := cmd.Flags().GetString("against"); against != "" {
		dir = against
	}
	ignoreWS := cfg.Check.IgnoreWhitespace
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		ignoreWS = false
	}

	comparer := check.NewComparer(fs, ignoreWS, cfg.Check.ContextLines)
	comparer.IgnorePrefixes = cfg.Check.IgnorePrefixes
	res, err := comparer.Compare(dir, rendered)
	if err != nil {
		return err
	}

	if logger.ShouldOutput(verbosity(cmd), logger.OutputTiming) {
		display.Timing(cmd.ErrOrStderr(), "Checked", len(res.Files), time.Since(start))
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(out, res); err != nil {
			return err
		}
	} else {
		display.CheckReport(out, res, logger.ShouldOutput(verbosity(cmd), logger.OutputDiffs))
	}

	if !res.UpToDate {
		// The report already explains the failure
		cmd.SilenceUsage = true
		return errors.WithHint(
			errors.Wrapf(ErrOutOfDate, "%d of %d file(s) in %s", len(res.Stale()), len(res.Files), dir),
			"run swiftpoet render with the same manifests to regenerate them",
		)
	}
	return nil
}
