package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// DefaultSchema is assumed when a manifest has no schema field.
const DefaultSchema = "1.0"

// SupportedSchemas is the semver constraint manifests must satisfy.
const SupportedSchemas = "^1.0"

var schemaConstraint = mustConstraint(SupportedSchemas)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "manifest %s", path),
			"use a .yaml, .yml, .toml or .json extension",
		)
	}
}

// Load reads and decodes the manifest at path from fs.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("manifest %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	m, err := Decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	m.Path = path

	logger.Debugw("Loaded manifest",
		logger.FieldManifest, path,
		logger.FieldFormat, string(format),
		logger.FieldCount, len(m.Files))
	return m, nil
}

// LoadAll loads every path in order, stopping at the first failure.
func LoadAll(fs afero.Fs, paths []string) ([]*Manifest, error) {
	manifests := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := Load(fs, p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// Decode parses data in the given format and validates the schema version.
// Unknown keys are rejected in every format.
func Decode(format Format, data []byte) (*Manifest, error) {
	var m Manifest
	var err error

	switch format {
	case FormatYAML:
		err = decodeYAML(data, &m)
	case FormatTOML:
		err = decodeTOML(data, &m)
	case FormatJSON:
		err = decodeJSON(data, &m)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := m.checkSchema(); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeYAML(data []byte, m *Manifest) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return errors.NewInvalidRequestError("empty manifest")
		}
		return errors.Wrap(err, "failed to parse YAML")
	}
	return nil
}

func decodeTOML(data []byte, m *Manifest) error {
	md, err := toml.Decode(string(data), m)
	if err != nil {
		return errors.Wrap(err, "failed to parse TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.NewInvalidRequestError("unknown TOML keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeJSON(data []byte, m *Manifest) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return errors.NewInvalidRequestError("empty manifest")
		}
		return errors.Wrap(err, "failed to parse JSON")
	}
	return nil
}

// checkSchema fills in the default schema and rejects versions outside
// SupportedSchemas.
func (m *Manifest) checkSchema() error {
	if m.Schema == "" {
		m.Schema = DefaultSchema
	}
	v, err := semver.NewVersion(m.Schema)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidRequest, "schema %q is not a version: %v", m.Schema, err)
	}
	if !schemaConstraint.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidRequest, "schema %s is not supported", m.Schema),
			"this build reads schemas matching %s", SupportedSchemas,
		)
	}
	return nil
}
