package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: rendered output and errors only
	VerbosityInfo  = 1 // -v: + files written, manifests built
	VerbosityDebug = 2 // -vv: + config sources, timing
	VerbosityTrace = 3 // -vvv: + per-file build details
)

// VerbosityToLevel maps verbosity flags (-v, -vv, etc.) to zap log levels
//
//	0 (none)  -> WarnLevel
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// OutputCategory is a kind of CLI output gated by verbosity rather than severity.
type OutputCategory int

const (
	OutputResults  OutputCategory = iota // Rendered source, check verdicts
	OutputErrors                         // Errors with hints
	OutputProgress                       // Manifests built
	OutputConfig                         // Config values and their sources
	OutputTiming                         // Render and check durations
	OutputDiffs                          // Full unified diffs from check
	OutputInternal                       // Imports and components of each built file
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:  VerbosityUser,
	OutputErrors:   VerbosityUser,
	OutputDiffs:    VerbosityUser,
	OutputProgress: VerbosityInfo,
	OutputConfig:   VerbosityDebug,
	OutputTiming:   VerbosityDebug,
	OutputInternal: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch {
	case verbosity < VerbosityUser:
		return "Unknown"
	case verbosity == VerbosityUser:
		return "User"
	case verbosity == VerbosityInfo:
		return "Info (-v)"
	case verbosity == VerbosityDebug:
		return "Debug (-vv)"
	default:
		return "Trace (-vvv)"
	}
}
