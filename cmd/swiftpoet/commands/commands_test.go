package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/errors"
)

const greeterManifest = `schema: "1.0"
files:
  - name: Greeter
    imports: [Foundation]
    declarations:
      - type:
          kind: struct
          name: Greeter
          methods:
            - name: greet
              params:
                - {name: name, type: String}
              returns: String
              body:
                - statement: 'return "Hello, \(name)"'
`

const greeterSwift = "import Foundation\n" +
	"struct Greeter {\n" +
	"  func greet(name: String) -> String {\n" +
	"    return \"Hello, \\(name)\"\n" +
	"  }\n" +
	"\n" +
	"}\n" +
	"\n"

// workspace isolates HOME, the working directory and cached config, and
// writes model.yaml into the new working directory.
func workspace(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	am.Reset()
	t.Cleanup(am.Reset)

	writeFile(t, filepath.Join(dir, "model.yaml"), greeterManifest)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:               "swiftpoet",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: Setup,
	}
	AddPersistentFlags(root)
	root.AddCommand(newRenderCmd(), newCheckCmd(), newAmCmd(), newVersionCmd())
	return root
}

// execute runs a fresh command tree and returns its stdout without colors.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeBoth(t, args...)
	return out, err
}

// executeBoth is execute that also returns stderr.
func executeBoth(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newTestRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return pterm.RemoveColorFromString(out.String()), pterm.RemoveColorFromString(errOut.String()), err
}

func TestRenderWritesFiles(t *testing.T) {
	dir := workspace(t)

	out, err := execute(t, "render", "model.yaml", "-o", "Sources")
	require.NoError(t, err)

	assert.Equal(t, greeterSwift, readFile(t, filepath.Join(dir, "Sources", "Greeter.swift")))
	assert.Contains(t, out, filepath.Join("Sources", "Greeter.swift"))
	assert.Contains(t, out, "Generated 1 file(s)")
}

func TestRenderDefaultOutputDir(t *testing.T) {
	dir := workspace(t)

	_, err := execute(t, "render", "model.yaml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, am.DefaultOutputDir, "Greeter.swift"))
}

func TestRenderStdout(t *testing.T) {
	workspace(t)

	out, err := execute(t, "render", "model.yaml", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, greeterSwift, out)
}

func TestRenderStdoutJSON(t *testing.T) {
	workspace(t)

	out, err := execute(t, "render", "model.yaml", "--stdout", "--json")
	require.NoError(t, err)

	var files []renderedFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "Greeter.swift", files[0].Name)
	assert.Equal(t, greeterSwift, files[0].Content)
}

func TestRenderIndentFlag(t *testing.T) {
	workspace(t)

	out, err := execute(t, "render", "model.yaml", "--stdout", "--indent", "\t")
	require.NoError(t, err)
	assert.Contains(t, out, "\tfunc greet(name: String) -> String {\n\t\treturn")
}

func TestRenderUsesProjectConfig(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, am.ConfigFileName), `
[emit]
indent = "    "
extension = "swiftgen"

[output]
dir = "Gen"
`)

	_, err := execute(t, "render", "model.yaml")
	require.NoError(t, err)

	content := readFile(t, filepath.Join(dir, "Gen", "Greeter.swiftgen"))
	assert.Contains(t, content, "    func greet(name: String) -> String {\n        return")
}

func TestRenderRespectsOverwrite(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, "generated", "Greeter.swift"), "// hand written\n")

	_, err := execute(t, "render", "model.yaml", "--overwrite=false")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists))
	assert.Equal(t, "// hand written\n", readFile(t, filepath.Join(dir, "generated", "Greeter.swift")))
}

func TestRenderJobReplacesItsOwnOutput(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, am.ConfigFileName), "[output]\noverwrite = false\n")

	root := newTestRoot()
	root.SetOut(io.Discard)
	cmd, _, err := root.Find([]string{"render"})
	require.NoError(t, err)
	cfg, err := am.Load()
	require.NoError(t, err)
	require.False(t, cfg.Output.Overwrite)

	// the job watch mode re-runs on every manifest change
	job, err := newRenderJob(cmd, afero.NewOsFs(), cfg, []string{"model.yaml"})
	require.NoError(t, err)
	require.NoError(t, job.run())

	changed := strings.Replace(greeterManifest, `"Hello, \(name)"`, `"Hi, \(name)"`, 1)
	writeFile(t, filepath.Join(dir, "model.yaml"), changed)
	require.NoError(t, job.run())

	assert.Contains(t, readFile(t, filepath.Join(dir, "generated", "Greeter.swift")), `return "Hi, \(name)"`)
}

func TestRenderRejectsNamesEqualAfterExtension(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, am.ConfigFileName), "[emit]\nextension = \"kt\"\n")
	writeFile(t, filepath.Join(dir, "pair.yaml"), `schema: "1.0"
files:
  - name: Greeter
    imports: [Foundation]
  - name: Greeter.kt
    imports: [Foundation]
`)

	_, err := execute(t, "render", "pair.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), "both render Greeter.kt")
	assert.NoDirExists(t, filepath.Join(dir, "generated"))
}

func TestRenderVerboseOutput(t *testing.T) {
	workspace(t)

	out, errOut, err := executeBoth(t, "render", "model.yaml", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, greeterSwift, out)
	assert.Empty(t, errOut)

	out, errOut, err = executeBoth(t, "-vv", "render", "model.yaml", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, greeterSwift, out)
	assert.Contains(t, errOut, "output.dir")
	assert.Contains(t, errOut, "# default")
	assert.Contains(t, errOut, "Rendered 1 file(s) in")
}

func TestCheckVerboseTiming(t *testing.T) {
	workspace(t)
	_, err := execute(t, "render", "model.yaml")
	require.NoError(t, err)

	_, errOut, err := executeBoth(t, "-vv", "check", "model.yaml")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Checked 1 file(s) in")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"no manifests", []string{"render"}, func(err error) bool { return err != nil }},
		{"watch with stdout", []string{"render", "model.yaml", "--watch", "--stdout"}, errors.IsInvalidRequestError},
		{"visible indent", []string{"render", "model.yaml", "--indent", "ab"}, errors.IsInvalidRequestError},
		{"missing manifest", []string{"render", "nope.yaml"}, errors.IsNotFoundError},
		{"same file twice", []string{"render", "model.yaml", "copy.yaml"}, errors.IsInvalidRequestError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := workspace(t)
			writeFile(t, filepath.Join(dir, "copy.yaml"), greeterManifest)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestCheckUpToDate(t *testing.T) {
	workspace(t)

	_, err := execute(t, "render", "model.yaml")
	require.NoError(t, err)

	out, err := execute(t, "check", "model.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "up-to-date Greeter.swift")
	assert.Contains(t, out, "1 file(s) up to date")
}

func TestCheckIgnoresIndentationByDefault(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, "Sources", "Greeter.swift"), greeterSwift)

	_, err := execute(t, "check", "model.yaml", "--against", "Sources", "--indent", "\t")
	require.NoError(t, err)

	_, err = execute(t, "check", "model.yaml", "--against", "Sources", "--indent", "\t", "--strict")
	assert.True(t, errors.Is(err, ErrOutOfDate))
}

func TestCheckOutOfDate(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, "Sources", "Greeter.swift"), "import Foundation\nstruct Greeter {\n}\n")

	out, err := execute(t, "check", "model.yaml", "--against", "Sources")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))
	assert.Contains(t, errors.GetAllHints(err)[0], "swiftpoet render")

	assert.Contains(t, out, "differs    Greeter.swift")
	assert.Contains(t, out, "+  func greet(name: String) -> String {")
	assert.Contains(t, out, "1 of 1 file(s) out of date")
}

func TestCheckIgnorePrefixesFromConfig(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, "Sources", "Greeter.swift"), "// Generated on 2026-01-02\n"+greeterSwift)

	_, err := execute(t, "check", "model.yaml", "--against", "Sources")
	assert.True(t, errors.Is(err, ErrOutOfDate))

	writeFile(t, filepath.Join(dir, am.ConfigFileName), "[check]\nignore_prefixes = [\"// Generated on\"]\n")
	am.Reset()
	_, err = execute(t, "check", "model.yaml", "--against", "Sources")
	require.NoError(t, err)
}

func TestCheckJSON(t *testing.T) {
	workspace(t)
	require.NoError(t, os.Mkdir("generated", 0755))

	out, err := execute(t, "check", "model.yaml", "--json")
	require.Error(t, err)

	var res struct {
		UpToDate bool `json:"up_to_date"`
		Files    []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.UpToDate)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "missing", res.Files[0].Status)
}

func TestCheckMissingDirectory(t *testing.T) {
	workspace(t)

	_, err := execute(t, "check", "model.yaml", "--against", "absent")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAmShow(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, am.ConfigFileName), "[output]\ndir = \"Gen\"\n")

	out, err := execute(t, "am", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `output.dir`)
	assert.Contains(t, out, `"Gen"`)
	assert.Contains(t, out, "# project")

	out, err = execute(t, "am", "show", "--json")
	require.NoError(t, err)

	var ci am.ConfigIntrospection
	require.NoError(t, json.Unmarshal([]byte(out), &ci))
	info, ok := ci.Source("output.dir")
	require.True(t, ok)
	assert.Equal(t, am.SourceProject, info.Source)
	assert.Equal(t, "Gen", info.Value)
}

func TestAmShowWithConfigFlag(t *testing.T) {
	dir := workspace(t)
	custom := filepath.Join(dir, "ci.toml")
	writeFile(t, custom, "[check]\ncontext_lines = 9\n")

	out, err := execute(t, "--config", custom, "am", "get", "check.context_lines")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestAmGet(t *testing.T) {
	workspace(t)

	out, err := execute(t, "am", "get", "output.dir")
	require.NoError(t, err)
	assert.Equal(t, "generated\n", out)

	_, err = execute(t, "am", "get", "output.missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAmInit(t *testing.T) {
	dir := workspace(t)

	out, err := execute(t, "am", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote poet.toml")

	cfg, err := am.LoadFromFile(filepath.Join(dir, am.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, am.Default(), cfg)

	_, err = execute(t, "am", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, am.ConfigFileName+".back1"))
}

func TestAmInitWithBrokenConfig(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, am.ConfigFileName), "[emit]\nindent = \"x\"\n")

	_, err := execute(t, "render", "model.yaml")
	require.Error(t, err)

	_, err = execute(t, "am", "init")
	require.NoError(t, err)

	_, err = execute(t, "render", "model.yaml")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	workspace(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "swiftpoet dev")
	assert.Contains(t, out, "Manifest schema: ^1.0")
	assert.Contains(t, out, "Platform: ")

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit_hash"`)
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.WithHint(errors.New("boom"), "try again"))
	assert.Equal(t, "Error: boom\nHint: try again\n", buf.String())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
