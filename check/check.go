// Package check compares freshly rendered sources with files already on disk.
package check

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
)

// Status is the outcome for one file.
type Status string

const (
	StatusUpToDate Status = "up-to-date"
	StatusDiffers  Status = "differs"
	StatusMissing  Status = "missing"
)

// FileResult is the comparison of one rendered file with its expected copy.
type FileResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

// Result holds the outcome of a check run, files sorted by name.
type Result struct {
	UpToDate bool         `json:"up_to_date"`
	Files    []FileResult `json:"files"`
}

// Stale returns the files that are not up to date.
func (r *Result) Stale() []FileResult {
	var stale []FileResult
	for _, f := range r.Files {
		if f.Status != StatusUpToDate {
			stale = append(stale, f)
		}
	}
	return stale
}

// Comparer compares rendered text with expected files under a directory.
type Comparer struct {
	Fs afero.Fs
	// IgnoreWhitespace trims each line and drops trailing blank lines before comparing
	IgnoreWhitespace bool
	// ContextLines is the number of unchanged lines around each diff hunk
	ContextLines int
	// IgnorePrefixes skips lines that start with any of these, after trimming
	// (e.g. "// Generated on")
	IgnorePrefixes []string
}

// NewComparer creates a Comparer on fs. A nil fs means the OS filesystem.
func NewComparer(fs afero.Fs, ignoreWhitespace bool, contextLines int) *Comparer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Comparer{Fs: fs, IgnoreWhitespace: ignoreWhitespace, ContextLines: contextLines}
}

// Compare checks every rendered file (name -> contents) against
// expectedDir/name. A missing expected file is reported, not returned as an error.
func (c *Comparer) Compare(expectedDir string, rendered map[string]string) (*Result, error) {
	exists, err := afero.DirExists(c.Fs, expectedDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", expectedDir)
	}
	if !exists {
		return nil, errors.NewNotFoundError("expected directory %s", expectedDir)
	}

	names := make([]string, 0, len(rendered))
	for name := range rendered {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{UpToDate: true}
	for _, name := range names {
		fr, err := c.compareFile(expectedDir, name, rendered[name])
		if err != nil {
			return nil, err
		}
		if fr.Status != StatusUpToDate {
			result.UpToDate = false
		}
		result.Files = append(result.Files, fr)
	}

	logger.Debugw("Compared rendered files",
		logger.FieldDir, expectedDir,
		logger.FieldCount, len(names),
		"up_to_date", result.UpToDate)
	return result, nil
}

func (c *Comparer) compareFile(dir, name, got string) (FileResult, error) {
	path := filepath.Join(dir, name)
	data, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileResult{Name: name, Status: StatusMissing}, nil
		}
		return FileResult{}, errors.Wrapf(err, "failed to read %s", path)
	}

	want := string(data)
	if c.normalize(want) == c.normalize(got) {
		return FileResult{Name: name, Status: StatusUpToDate}, nil
	}

	diff, err := c.unifiedDiff(name, want, got)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{Name: name, Status: StatusDiffers, Diff: diff}, nil
}

func (c *Comparer) unifiedDiff(name, want, got string) (string, error) {
	context := c.ContextLines
	if context < 0 {
		context = 0
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "expected/" + name,
		ToFile:   "rendered/" + name,
		Context:  context,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to diff %s", name)
	}
	return diff, nil
}

// normalize applies the comparison options to content.
// Returns empty string if the scanner fails, which makes the comparison fail.
func (c *Comparer) normalize(content string) string {
	if !c.IgnoreWhitespace && len(c.IgnorePrefixes) == 0 {
		return content
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if c.ignored(line) {
			continue
		}
		if c.IgnoreWhitespace {
			line = strings.TrimSpace(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	if c.IgnoreWhitespace {
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Comparer) ignored(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range c.IgnorePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
