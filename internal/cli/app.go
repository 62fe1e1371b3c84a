package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"llmhealth/internal/config"
	"llmhealth/internal/core"
	"llmhealth/internal/interview"
	"llmhealth/internal/metrics"
	"llmhealth/internal/util"
)

// App is the command-line probe application.
type App struct {
	simulator *interview.Simulator
	logger    core.Logger
	stdout    io.Writer
	config    config.ProbeConfig
}

// New creates the probe application from its configuration. An injected
// sampler wins over HEALTH_SEED; with neither, rolls come from the shared
// random source.
func New(cfg config.ProbeConfig) *App {
	if cfg.Logger == nil {
		cfg.Logger = &core.NopLogger{}
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	sampler := cfg.Sampler
	if sampler == nil && cfg.HasSeed {
		sampler = interview.NewSeededSampler(cfg.Seed)
		cfg.Logger.Debug("Using seeded sampler (seed %d)", cfg.Seed)
	}

	return &App{
		simulator: interview.NewSimulator(interview.SimulatorConfig{
			Sampler: sampler,
			Logger:  cfg.Logger,
		}),
		logger: cfg.Logger,
		stdout: cfg.Stdout,
		config: cfg,
	}
}

// Run executes one probe. args are the program arguments without the
// binary name; the returned value is the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) < 1 {
		fmt.Fprint(a.stdout, usageText)
		return core.ExitNotFound
	}
	modelID := args[0]

	modelsPath := a.config.ModelsPath
	if modelsPath == "" {
		modelsPath = config.ResolveModelsPath(a.logger)
	}

	records, err := config.LoadModelRecords(modelsPath, a.logger)
	if err != nil {
		a.logger.Error("Could not load model records: %v", err)
		return core.ExitConfigError
	}

	record, ok := records[modelID]
	if !ok {
		a.logger.Debug("Model %q not present in %s", modelID, modelsPath)
		return core.ExitNotFound
	}

	a.logger.Debug("Probing %s (%s): endpoint=%s apiKey=%s availability=%.2f latency=%v",
		record.ID, record.Name, record.Endpoint, util.GetKeyDisplayName(record.APIKey),
		record.MockAvailability, record.Latency)

	start := time.Now()
	result, err := a.simulator.Initiate(ctx, record)
	elapsed := time.Since(start)
	if err != nil {
		a.logger.Error("Interview aborted: %v", err)
		return core.ExitFailure
	}

	a.recordHistory(record.ID, result, elapsed)

	a.logger.Debug("Interview for %s finished: %s in %v", record.ID, result, elapsed)
	return int(result)
}

// recordHistory persists the probe outcome when a storage backend is
// configured. History is best effort and never changes the exit code.
func (a *App) recordHistory(modelID string, result interview.Result, elapsed time.Duration) {
	if a.config.Storage == nil {
		return
	}

	recorder := metrics.NewRecorder(metrics.RecorderConfig{
		HistoryLimit: a.config.HistoryLimit,
		Storage:      a.config.Storage,
		Logger:       a.logger,
	})
	if err := recorder.Load(); err != nil {
		a.logger.Warn("Could not load probe history: %v", err)
	}

	record := recorder.RecordProbe(modelID, result == interview.Success, elapsed)
	a.logger.Debug("Recorded %s for %s (%dms)", record.ID, modelID, record.Elapsed)

	stats := recorder.Stats()
	day := metrics.SummarizeWindows(stats.ProbeHistory, 24*time.Hour)[24*time.Hour]
	a.logger.Debug("Last 24h across models: %d probes, %.1f%% success, avg %dms",
		day.Probes, day.SuccessRate, day.AvgElapsed)

	if err := recorder.Close(); err != nil {
		a.logger.Warn("Could not save probe history: %v", err)
	}
}
