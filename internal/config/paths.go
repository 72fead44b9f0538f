package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// GlobalConfigDir returns the path to the global signet configuration directory.
// This is typically ~/.signet on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.SignetHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration directory.
func ProjectConfigDir() string {
	return constants.ProjectConfigDir
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
// This is always .signet/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ProjectConfigName)
}

// LogFilePath returns the path of the CLI log file, ~/.signet/logs/signet.log.
func LogFilePath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.CLILogFileName), nil
}
