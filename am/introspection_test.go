package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospect_Sources(t *testing.T) {
	home, project := isolate(t)

	userPath := filepath.Join(home, ".swiftpoet", ConfigFileName)
	projectPath := filepath.Join(project, ConfigFileName)
	writeFile(t, userPath, "[emit]\nindent = \"    \"\n")
	writeFile(t, projectPath, "[output]\ndir = \"Gen\"\n")
	t.Setenv("SWIFTPOET_LOG_JSON", "true")

	_, err := Load()
	require.NoError(t, err)

	ci := Introspect(GetViper())

	tests := []struct {
		key        string
		source     ConfigSource
		sourcePath string
		value      interface{}
	}{
		{"emit.indent", SourceUser, userPath, "    "},
		{"output.dir", SourceProject, projectPath, "Gen"},
		{"log.json", SourceEnvironment, "SWIFTPOET_LOG_JSON", "true"},
		{"emit.extension", SourceDefault, "built-in default", "swift"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			info, ok := ci.Source(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.source, info.Source)
			assert.Equal(t, tt.sourcePath, info.SourcePath)
			assert.Equal(t, tt.value, info.Value)
		})
	}
}

func TestIntrospect_SortedAndComplete(t *testing.T) {
	isolate(t)

	ci := Introspect(nil)
	keys := make([]string, 0, len(ci.Settings))
	for _, s := range ci.Settings {
		keys = append(keys, s.Key)
	}

	assert.Equal(t, []string{
		"check.context_lines",
		"check.ignore_prefixes",
		"check.ignore_whitespace",
		"emit.extension",
		"emit.indent",
		"log.json",
		"output.dir",
		"output.overwrite",
	}, keys)

	_, ok := ci.Source("emit.missing")
	assert.False(t, ok)
}

func TestFlattenSettingsWithSources(t *testing.T) {
	settings := map[string]interface{}{
		"emit": map[string]interface{}{
			"indent": "\t",
		},
		"top": 1,
	}
	sources := map[string]SourceInfo{
		"emit.indent": {Source: SourceProject, Path: "/p/poet.toml"},
	}

	ci := &ConfigIntrospection{}
	flattenSettingsWithSources(settings, "", ci, sources)

	require.Len(t, ci.Settings, 2)
	assert.Equal(t, SettingInfo{Key: "emit.indent", Value: "\t", Source: SourceProject, SourcePath: "/p/poet.toml"}, ci.Settings[0])
	assert.Equal(t, SettingInfo{Key: "top", Value: 1, Source: SourceDefault, SourcePath: "built-in default"}, ci.Settings[1])
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "SWIFTPOET_CHECK_IGNORE_WHITESPACE", EnvKey("check.ignore_whitespace"))
}
