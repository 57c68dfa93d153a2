package testing

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/teranos/swiftpoet/poet"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata/")

// Render emits e with the default indent unit and returns the text.
func Render(t *testing.T, e poet.Emitter) string {
	t.Helper()
	return poet.Render(e)
}

// RenderFile renders a source file and fails the test on a sink error.
func RenderFile(t *testing.T, f *poet.SourceFile) string {
	t.Helper()

	out, err := f.Render()
	if err != nil {
		t.Fatalf("Failed to render %s: %v", f.Name(), err)
	}
	return out
}

// Golden compares got with testdata/<name>.golden.
// Run the tests with -update to rewrite the file.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("Failed to update golden file %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", path, err)
	}
	if string(want) != got {
		t.Errorf("%s mismatch\n--- want ---\n%s\n--- got ---\n%s", path, want, got)
	}
}

// MemFs returns an in-memory filesystem seeded with files (path -> content).
func MemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to seed %s: %v", path, err)
		}
	}
	return fs
}
