// Package am holds swiftpoet's configuration: how files are emitted, where
// they are written, how check compares them and how the CLI logs.
//
// Settings come from built-in defaults, the user file ~/.swiftpoet/poet.toml,
// the nearest project poet.toml and SWIFTPOET_* environment variables, in
// increasing order of precedence.
package am

// Config is the effective swiftpoet configuration.
type Config struct {
	Emit   EmitConfig   `mapstructure:"emit" toml:"emit"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
	Check  CheckConfig  `mapstructure:"check" toml:"check"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// EmitConfig controls rendering.
type EmitConfig struct {
	// Indent is the unit written once per nesting level.
	Indent string `mapstructure:"indent" toml:"indent"`
	// Extension replaces "swift" on generated file names, without a dot.
	Extension string `mapstructure:"extension" toml:"extension"`
}

// OutputConfig controls where rendered files go.
type OutputConfig struct {
	Dir       string `mapstructure:"dir" toml:"dir"`
	Overwrite bool   `mapstructure:"overwrite" toml:"overwrite"`
}

// CheckConfig controls comparison against checked-in files.
type CheckConfig struct {
	IgnoreWhitespace bool `mapstructure:"ignore_whitespace" toml:"ignore_whitespace"`
	ContextLines     int  `mapstructure:"context_lines" toml:"context_lines"`
	// IgnorePrefixes drops lines starting with any of these, e.g. "// Generated on"
	IgnorePrefixes []string `mapstructure:"ignore_prefixes" toml:"ignore_prefixes"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}
