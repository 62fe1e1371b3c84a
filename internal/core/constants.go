package core

// Exit code constants for the probe process
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitNotFound    = 2
	ExitConfigError = 3
)

// Default config constants
const (
	DefaultModelsFile   = "models.json"
	DefaultHistoryFile  = "health_history.json"
	DefaultHistoryLimit = 1000
)

// ID prefix constants
const (
	ProbeIDPrefix = "probe-"
)

// Logging config constants
const (
	MaxDebugFilePathLength = 260
)

// File permission constants
const (
	FilePermissionReadWrite = 0644
)
