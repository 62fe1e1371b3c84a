package metrics

import (
	"sync"
	"time"

	"llmhealth/internal/core"

	"github.com/google/uuid"
)

// RecorderConfig configuration for Recorder
type RecorderConfig struct {
	HistoryLimit int
	Storage      core.StorageInterface
	Logger       core.Logger
}

// Recorder accumulates probe outcomes on top of previously persisted
// stats. A probe run records a single outcome, so the recorder lives
// through a short load, append, save lifecycle.
type Recorder struct {
	mu           sync.Mutex
	stats        core.ProbeStats
	historyLimit int
	storage      core.StorageInterface
	logger       core.Logger
}

// NewRecorder creates a Recorder
func NewRecorder(config RecorderConfig) *Recorder {
	limit := config.HistoryLimit
	if limit <= 0 {
		limit = core.DefaultHistoryLimit
	}
	logger := config.Logger
	if logger == nil {
		logger = &core.NopLogger{}
	}
	return &Recorder{
		historyLimit: limit,
		storage:      config.Storage,
		logger:       logger,
	}
}

// Load restores previously persisted stats. A missing history is not an
// error; the recorder simply starts from zero.
func (r *Recorder) Load() error {
	if r.storage == nil {
		return nil
	}
	stats, err := r.storage.LoadStats()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.stats = *stats
	r.mu.Unlock()
	return nil
}

// RecordProbe appends one probe outcome and returns the stored record,
// including its generated id.
func (r *Recorder) RecordProbe(model string, success bool, elapsed time.Duration) core.ProbeRecord {
	record := core.ProbeRecord{
		ID:        core.ProbeIDPrefix + uuid.New().String(),
		Timestamp: time.Now(),
		Success:   success,
		Elapsed:   elapsed.Milliseconds(),
		Model:     model,
	}

	r.mu.Lock()
	r.stats.TotalProbes++
	if success {
		r.stats.SuccessfulProbes++
	} else {
		r.stats.FailedProbes++
	}
	r.stats.TotalElapsedTime += record.Elapsed
	r.stats.LastProbeTime = record.Timestamp
	r.stats.ProbeHistory = append(r.stats.ProbeHistory, record)
	if len(r.stats.ProbeHistory) > r.historyLimit {
		r.stats.ProbeHistory = r.stats.ProbeHistory[len(r.stats.ProbeHistory)-r.historyLimit:]
	}
	r.mu.Unlock()

	return record
}

// Stats returns a snapshot copy of the accumulated stats.
func (r *Recorder) Stats() core.ProbeStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	historyCopy := make([]core.ProbeRecord, len(r.stats.ProbeHistory))
	copy(historyCopy, r.stats.ProbeHistory)

	snapshot := r.stats
	snapshot.ProbeHistory = historyCopy
	return snapshot
}

// Close persists the final stats.
func (r *Recorder) Close() error {
	if r.storage == nil {
		return nil
	}
	stats := r.Stats()
	return r.storage.SaveStats(&stats)
}

// SummarizeWindows computes statistics for multiple trailing time windows
// in a single pass over history. SuccessRate is a percentage.
func SummarizeWindows(history []core.ProbeRecord, windows ...time.Duration) map[time.Duration]core.WindowStats {
	if len(windows) == 0 {
		return nil
	}

	now := time.Now()
	cutoffs := make([]time.Time, len(windows))
	probes := make([]int64, len(windows))
	successful := make([]int64, len(windows))
	elapsed := make([]int64, len(windows))

	for i, window := range windows {
		cutoffs[i] = now.Add(-window)
	}

	for _, record := range history {
		for i, cutoff := range cutoffs {
			if record.Timestamp.After(cutoff) {
				probes[i]++
				elapsed[i] += record.Elapsed
				if record.Success {
					successful[i]++
				}
			}
		}
	}

	result := make(map[time.Duration]core.WindowStats, len(windows))
	for i, window := range windows {
		stats := core.WindowStats{Probes: probes[i]}
		if probes[i] > 0 {
			stats.SuccessRate = float64(successful[i]) / float64(probes[i]) * 100
			stats.AvgElapsed = elapsed[i] / probes[i]
		}
		result[window] = stats
	}
	return result
}
