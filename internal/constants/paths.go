package constants

// Log file names.
const (
	// CLILogFileName is the name of the CLI log file.
	// This file is located in ~/.signet/logs/signet.log
	CLILogFileName = "signet.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the signet home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigDir is the directory holding the project configuration file.
	ProjectConfigDir = ".signet"

	// ProjectConfigName is the name of the project configuration file
	// inside ProjectConfigDir.
	ProjectConfigName = "config.yaml"
)
