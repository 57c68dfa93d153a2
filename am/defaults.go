package am

import (
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is looked up in ~/.swiftpoet and in the project tree.
	ConfigFileName = "poet.toml"

	// EnvPrefix prefixes environment overrides: SWIFTPOET_EMIT_INDENT etc.
	EnvPrefix = "SWIFTPOET"

	DefaultIndent       = "  "
	DefaultExtension    = "swift"
	DefaultOutputDir    = "generated"
	DefaultContextLines = 3

	// DefaultDirPermissions for ~/.swiftpoet
	DefaultDirPermissions = 0750
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("emit.indent", DefaultIndent)
	v.SetDefault("emit.extension", DefaultExtension)

	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.overwrite", true)

	v.SetDefault("check.ignore_whitespace", true)
	v.SetDefault("check.context_lines", DefaultContextLines)
	v.SetDefault("check.ignore_prefixes", []string{})

	v.SetDefault("log.json", false)
}

// Default returns the configuration produced by SetDefaults alone.
func Default() *Config {
	return &Config{
		Emit:   EmitConfig{Indent: DefaultIndent, Extension: DefaultExtension},
		Output: OutputConfig{Dir: DefaultOutputDir, Overwrite: true},
		Check:  CheckConfig{IgnoreWhitespace: true, ContextLines: DefaultContextLines, IgnorePrefixes: []string{}},
	}
}
