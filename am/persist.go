package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
)

const configHeader = "# swiftpoet configuration\n# Environment variables SWIFTPOET_<SECTION>_<KEY> override these values.\n\n"

// WriteDefault writes the default configuration to path, or to poet.toml in
// the working directory when path is empty. An existing file is kept as a
// rotating backup. Returns the path written.
func WriteDefault(path string) (string, error) {
	if path == "" {
		path = ConfigFileName
	}
	if err := Save(path, Default()); err != nil {
		return "", err
	}
	return path, nil
}

// Save validates config and writes it to path as TOML.
func Save(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid config")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}

	// Cached settings no longer reflect the files on disk
	Reset()

	logger.Infow("Wrote config", logger.FieldPath, path)
	return nil
}

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	// .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old backup", logger.FieldPath, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}
