package core

import "time"

// ModelRecord is a single validated entry from the models configuration
// file. The loader converts the file's loosely-typed JSON objects into
// this form once, so downstream code never touches raw maps.
type ModelRecord struct {
	ID               string
	Name             string
	Endpoint         string
	APIKey           string
	MockAvailability float64
	Latency          time.Duration
}

// ProbeStats holds aggregated probe outcomes for monitoring.
type ProbeStats struct {
	TotalProbes      int64         `json:"total_probes"`
	SuccessfulProbes int64         `json:"successful_probes"`
	FailedProbes     int64         `json:"failed_probes"`
	TotalElapsedTime int64         `json:"total_elapsed_time"`
	LastProbeTime    time.Time     `json:"last_probe_time"`
	ProbeHistory     []ProbeRecord `json:"probe_history"`
}

// ProbeRecord represents a single probe's outcome for history tracking.
// Elapsed is wall-clock time in milliseconds.
type ProbeRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Elapsed   int64     `json:"elapsed"`
	Model     string    `json:"model"`
}

// WindowStats holds computed statistics for a trailing time window.
type WindowStats struct {
	Probes      int64   `json:"probes"`
	SuccessRate float64 `json:"successRate"`
	AvgElapsed  int64   `json:"avgElapsed"`
}
