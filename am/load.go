package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
)

var (
	globalConfig  *Config
	viperInstance *viper.Viper

	// ConfigSources records, per dotted key, the file layer that last set it.
	// Keys missing here come from defaults or the environment.
	ConfigSources = map[string]SourceInfo{}
)

// Load reads the swiftpoet configuration from all sources. The result is
// cached until Reset.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper unmarshals and validates configuration from a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFromFile loads configuration from an explicit file instead of the
// user and project files. Defaults and environment variables still apply.
// The result becomes the active configuration.
func LoadFromFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("config file %s", configPath)
		}
		return nil, errors.Wrapf(err, "failed to stat config file %s", configPath)
	}

	Reset()
	v := newViper()
	if err := mergeConfigFile(v, configPath, SourceFile); err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}

	viperInstance = v
	globalConfig = config
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := newViper()

	// Precedence (lowest to highest): defaults < user < project < env vars
	for _, layer := range configLayers() {
		if err := mergeConfigFile(v, layer.Path, layer.Source); err != nil {
			logger.Warnw("Ignoring unreadable config file",
				logger.FieldPath, layer.Path,
				logger.FieldError, err)
		}
	}

	viperInstance = v
	return v
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// configLayers lists the config files that exist, lowest precedence first.
func configLayers() []SourceInfo {
	var layers []SourceInfo
	if userPath := UserConfigPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			layers = append(layers, SourceInfo{Source: SourceUser, Path: userPath})
		}
	}
	if projectPath := findProjectConfig(); projectPath != "" && !sameFile(projectPath, UserConfigPath()) {
		layers = append(layers, SourceInfo{Source: SourceProject, Path: projectPath})
	}
	return layers
}

// mergeConfigFile reads one TOML file and copies its keys over v,
// recording where each came from.
func mergeConfigFile(v *viper.Viper, path string, source ConfigSource) error {
	tempViper := viper.New()
	tempViper.SetConfigFile(path)
	tempViper.SetConfigType("toml")

	if err := tempViper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	for _, key := range tempViper.AllKeys() {
		v.Set(key, tempViper.Get(key))
		ConfigSources[key] = SourceInfo{Source: source, Path: path}
	}

	logger.Debugw("Merged config file",
		logger.FieldPath, path,
		logger.FieldSource, string(source),
		logger.FieldCount, len(tempViper.AllKeys()))
	return nil
}

// UserConfigPath returns ~/.swiftpoet/poet.toml, or "" without a home directory.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".swiftpoet", ConfigFileName)
}

// findProjectConfig searches for poet.toml by walking up the directory tree.
// Returns the path to the first file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func sameFile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
