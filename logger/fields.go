package logger

import "go.uber.org/zap"

// Standard field names for structured logging across swiftpoet.
const (
	FieldComponent  = "component"
	FieldFile       = "file"
	FieldManifest   = "manifest"
	FieldDir        = "dir"
	FieldPath       = "path"
	FieldFormat     = "format"
	FieldBytes      = "bytes"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldSource     = "source"
)

// ComponentLogger returns a named logger for a specific component.
//
//	type Loader struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewLoader() *Loader {
//	    return &Loader{logger: logger.ComponentLogger("manifest.loader")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
