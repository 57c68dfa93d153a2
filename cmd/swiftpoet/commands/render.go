package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/display"
	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
	"github.com/teranos/swiftpoet/manifest"
	"github.com/teranos/swiftpoet/output"
)

// RenderCmd renders manifests to Swift files
var RenderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <manifest>...",
		Short: "Render Swift source files from manifests",
		Long: `Render Swift source files described by YAML, TOML or JSON manifests.

Each manifest lists files with their imports and declarations: types,
functions, variables and free-form code. Files are written to the output
directory (output.dir in poet.toml) unless --stdout is given.

Examples:
  swiftpoet render model.yaml                    # Write to ./generated
  swiftpoet render model.yaml -o Sources/Gen     # Write to a directory
  swiftpoet render model.toml --stdout           # Print instead of writing
  swiftpoet render *.yaml --watch                # Re-render on change`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringP("output", "o", "", "Output directory (default: output.dir)")
	cmd.Flags().String("indent", "", "Indent unit (default: emit.indent)")
	cmd.Flags().Bool("stdout", false, "Print rendered files instead of writing them")
	cmd.Flags().BoolP("watch", "w", false, "Re-render whenever a manifest changes")
	cmd.Flags().Bool("overwrite", false, "Replace existing files (default: output.overwrite)")
	return cmd
}

// renderJob is one render pass, repeated on every change in watch mode.
type renderJob struct {
	fs        afero.Fs
	manifests []string
	dir       string
	writer    *output.Writer
	stdout    bool
	json      bool
	verbosity int
	out       io.Writer
	errOut    io.Writer
}

// renderedFile is the JSON shape of a file printed with --stdout.
type renderedFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	stdout, _ := cmd.Flags().GetBool("stdout")
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && stdout {
		return errors.NewInvalidRequestError("--watch writes files and cannot be combined with --stdout")
	}

	job, err := newRenderJob(cmd, afero.NewOsFs(), cfg, args)
	if err != nil {
		return err
	}
	if err := job.run(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := manifest.NewWatcher(args, manifest.DefaultDebounce, func(changed []string) error {
		logger.Infow("Manifests changed, re-rendering", logger.FieldCount, len(changed))
		return job.run()
	})
	if err != nil {
		return err
	}

	pterm.Info.WithWriter(job.out).Printf("Watching %d manifest(s), press Ctrl+C to stop\n", len(args))
	return watcher.Run(ctx)
}

func newRenderJob(cmd *cobra.Command, fs afero.Fs, cfg *am.Config, manifests []string) (*renderJob, error) {
	writer, err := newOutputWriter(cmd, fs, cfg)
	if err != nil {
		return nil, err
	}

	dir := cfg.Output.Dir
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		dir = o
	}
	stdout, _ := cmd.Flags().GetBool("stdout")

	return &renderJob{
		fs:        fs,
		manifests: manifests,
		dir:       dir,
		writer:    writer,
		stdout:    stdout,
		json:      display.ShouldOutputJSON(cmd),
		verbosity: verbosity(cmd),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
	}, nil
}

func (j *renderJob) run() error {
	start := time.Now()

	files, err := buildFiles(j.fs, j.manifests, j.writer, j.verbosity)
	if err != nil {
		return err
	}
	defer func() {
		if logger.ShouldOutput(j.verbosity, logger.OutputTiming) {
			display.Timing(j.errOut, "Rendered", len(files), time.Since(start))
		}
	}()

	if j.stdout {
		rendered := make([]renderedFile, 0, len(files))
		for _, f := range files {
			content, err := output.Render(f, j.writer.Indent)
			if err != nil {
				return err
			}
			rendered = append(rendered, renderedFile{Name: j.writer.FileName(f), Content: content})
		}
		return j.print(rendered)
	}

	paths, err := j.writer.WriteAll(j.dir, files)
	if err != nil {
		return err
	}

	logger.Infow("Render complete",
		logger.FieldDir, j.dir,
		logger.FieldCount, len(paths),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if j.json {
		return display.OutputJSON(j.out, map[string]interface{}{"dir": j.dir, "files": paths})
	}
	display.Written(j.out, paths)
	return nil
}

// print writes rendered files to the terminal. With several files each one
// is preceded by a comment naming it.
func (j *renderJob) print(files []renderedFile) error {
	if j.json {
		return display.OutputJSON(j.out, files)
	}
	for _, f := range files {
		if len(files) > 1 {
			fmt.Fprintf(j.out, "// %s\n", f.Name)
		}
		if _, err := io.WriteString(j.out, f.Content); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}
