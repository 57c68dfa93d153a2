// Package output writes rendered source files to a filesystem.
//
// The filesystem is an afero.Fs so callers and tests can target memory,
// a base-path jail or the real OS without changing the writer.
package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
	"github.com/teranos/swiftpoet/poet"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Writer places rendered files in a destination directory.
type Writer struct {
	Fs        afero.Fs
	Indent    string
	Overwrite bool
	// Extension replaces the default ".swift" suffix of generated names.
	// Empty keeps the name as built.
	Extension string

	// paths written by this Writer, which it may always replace
	written map[string]bool
	logger  *zap.SugaredLogger
}

// NewWriter creates a Writer on fs. A nil fs means the OS filesystem.
func NewWriter(fs afero.Fs, indent string, overwrite bool) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if indent == "" {
		indent = poet.DefaultIndent
	}
	return &Writer{
		Fs:        fs,
		Indent:    indent,
		Overwrite: overwrite,
		logger:    logger.ComponentLogger("output"),
	}
}

// Render returns the contents of file rendered with indent.
func Render(file *poet.SourceFile, indent string) (string, error) {
	if indent == "" {
		indent = poet.DefaultIndent
	}
	out, err := file.Render(poet.WithIndent(indent))
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s", file.Name())
	}
	return out, nil
}

// WriteFile renders file into dir and returns the path written.
//
// dir is created if missing, but only one level: a missing parent is an
// error. An existing file is replaced only when Overwrite is set or when this
// Writer wrote it earlier, so repeated passes over the same files succeed.
func (w *Writer) WriteFile(dir string, file *poet.SourceFile) (string, error) {
	if err := validateName(file.Name()); err != nil {
		return "", err
	}
	if err := w.ensureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, w.FileName(file))
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !w.Overwrite && !w.written[path] {
		flags |= os.O_EXCL
	}

	f, err := w.Fs.OpenFile(path, flags, filePerm)
	if err != nil {
		if os.IsExist(err) {
			return "", errors.WithHint(
				errors.Wrapf(errors.ErrAlreadyExists, "output file %s", path),
				"pass --overwrite or set output.overwrite = true in poet.toml",
			)
		}
		return "", errors.Wrapf(err, "failed to create %s", path)
	}

	n, err := file.RenderTo(f, poet.WithIndent(w.Indent))
	closeErr := f.Close()
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if closeErr != nil {
		return "", errors.Wrapf(closeErr, "failed to close %s", path)
	}

	if w.written == nil {
		w.written = make(map[string]bool)
	}
	w.written[path] = true
	w.log().Infow("Wrote file", logger.FieldFile, path, logger.FieldBytes, n)
	return path, nil
}

// FileName returns the name file is written under.
func (w *Writer) FileName(file *poet.SourceFile) string {
	name := file.Name()
	if w.Extension == "" || !strings.HasSuffix(name, poet.FileExtension) {
		return name
	}
	return strings.TrimSuffix(name, poet.FileExtension) + "." + strings.TrimPrefix(w.Extension, ".")
}

// WriteAll writes every file into dir, stopping at the first failure.
func (w *Writer) WriteAll(dir string, files []*poet.SourceFile) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := w.WriteFile(dir, f)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) ensureDir(dir string) error {
	info, err := w.Fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf("output path %s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %s", dir)
	}

	parent := filepath.Dir(dir)
	if _, err := w.Fs.Stat(parent); err != nil && parent != "." {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrNotFound, "parent directory %s", parent),
			"only one directory level is created; create %s first", parent,
		)
	}
	if err := w.Fs.Mkdir(dir, dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	w.log().Debugw("Created output directory", logger.FieldDir, dir)
	return nil
}

func (w *Writer) log() *zap.SugaredLogger {
	if w.logger == nil {
		w.logger = logger.ComponentLogger("output")
	}
	return w.logger
}

// validateName rejects file names that would escape the destination directory.
func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return errors.NewInvalidRequestError("file name %q must be a plain file name", name)
	}
	return nil
}
