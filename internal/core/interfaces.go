package core

// Logger is the leveled logger shared across packages.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)
}

// Sampler draws pseudo-random values in [0.0, 1.0) for availability rolls.
type Sampler interface {
	Float64() float64
}

// StorageInterface persists probe statistics between runs.
type StorageInterface interface {
	SaveStats(stats *ProbeStats) error
	LoadStats() (*ProbeStats, error)
	Close() error
}

// NopLogger discards all log output.
type NopLogger struct{}

func (*NopLogger) Debug(format string, args ...any) {}
func (*NopLogger) Info(format string, args ...any)  {}
func (*NopLogger) Warn(format string, args ...any)  {}
func (*NopLogger) Error(format string, args ...any) {}
func (*NopLogger) Fatal(format string, args ...any) {}

// NopStorage keeps nothing; used when no history backend is configured.
type NopStorage struct{}

func (*NopStorage) SaveStats(stats *ProbeStats) error { return nil }
func (*NopStorage) LoadStats() (*ProbeStats, error)   { return &ProbeStats{}, nil }
func (*NopStorage) Close() error                      { return nil }
