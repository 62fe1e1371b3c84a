package interview

import (
	"context"
	"math/rand/v2"
	"time"

	"llmhealth/internal/core"
)

// Result is the outcome of a simulated interview. Values match the
// process exit codes for healthy and unhealthy models.
type Result int

// Interview outcome constants.
const (
	Success Result = core.ExitSuccess
	Failure Result = core.ExitFailure
)

// String returns the human-readable outcome name.
func (r Result) String() string {
	if r == Success {
		return "success"
	}
	return "failure"
}

// defaultSampler draws from the shared math/rand/v2 generator.
type defaultSampler struct{}

func (defaultSampler) Float64() float64 { return rand.Float64() }

// NewSeededSampler returns a deterministic sampler for reproducible runs.
func NewSeededSampler(seed uint64) core.Sampler {
	return rand.New(rand.NewPCG(seed, seed))
}

// SimulatorConfig simulator configuration
type SimulatorConfig struct {
	Sampler core.Sampler
	Logger  core.Logger
}

// Simulator fakes one model interview per call: it waits out the model's
// configured latency, then rolls against its mock availability. No real
// endpoint is ever contacted.
type Simulator struct {
	sampler core.Sampler
	logger  core.Logger
}

// NewSimulator creates a Simulator, falling back to the shared random
// source and a no-op logger when none are injected.
func NewSimulator(config SimulatorConfig) *Simulator {
	sampler := config.Sampler
	if sampler == nil {
		sampler = defaultSampler{}
	}
	logger := config.Logger
	if logger == nil {
		logger = &core.NopLogger{}
	}
	return &Simulator{sampler: sampler, logger: logger}
}

// Initiate runs one simulated interview against record. It blocks for the
// record's latency (or until ctx is done), then reports Success when the
// drawn sample lands strictly below the record's mock availability.
func (s *Simulator) Initiate(ctx context.Context, record core.ModelRecord) (Result, error) {
	if record.Latency > 0 {
		timer := time.NewTimer(record.Latency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Warn("Interview for %s aborted: %v", record.ID, ctx.Err())
			return Failure, ctx.Err()
		}
	}

	sample := s.sampler.Float64()
	if sample < record.MockAvailability {
		s.logger.Debug("Interview for %s succeeded (sample %.4f < availability %.4f)", record.ID, sample, record.MockAvailability)
		return Success, nil
	}

	s.logger.Debug("Interview for %s failed (sample %.4f >= availability %.4f)", record.ID, sample, record.MockAvailability)
	return Failure, nil
}
