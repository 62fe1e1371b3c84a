package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"llmhealth/internal/core"
	"llmhealth/internal/util"

	"github.com/bytedance/sonic"
)

// Required model record fields as spelled in the config file. The
// mockAvailablity spelling is part of the upstream file contract.
const (
	fieldID               = "id"
	fieldName             = "name"
	fieldEndpoint         = "endpoint"
	fieldAPIKey           = "apiKey"
	fieldMockAvailability = "mockAvailablity"
	fieldLatency          = "latency"
)

// ProbeConfig probe configuration
type ProbeConfig struct {
	ModelsPath   string
	HistoryLimit int
	Seed         uint64
	HasSeed      bool
	Sampler      core.Sampler
	Storage      core.StorageInterface
	Logger       core.Logger
	Stdout       io.Writer
}

// LoadProbeConfigFromEnv loads probe config from environment variables
func LoadProbeConfigFromEnv(logger core.Logger) ProbeConfig {
	config := ProbeConfig{
		ModelsPath:   ResolveModelsPath(logger),
		HistoryLimit: util.GetEnvInt("HEALTH_HISTORY_LIMIT", core.DefaultHistoryLimit),
	}

	if raw := os.Getenv("HEALTH_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			logger.Warn("HEALTH_SEED %q is not a valid unsigned integer, ignoring", raw)
		} else {
			config.Seed = seed
			config.HasSeed = true
		}
	}

	return config
}

// ResolveModelsPath locates the models configuration file. An explicit
// MODELS_PATH wins; otherwise the file is expected next to the binary,
// falling back to the working directory when the executable path is
// unavailable.
func ResolveModelsPath(logger core.Logger) string {
	if path := os.Getenv("MODELS_PATH"); path != "" {
		return path
	}

	exe, err := os.Executable()
	if err != nil {
		logger.Warn("Could not determine executable path: %v, using working directory", err)
		return core.DefaultModelsFile
	}

	return filepath.Join(filepath.Dir(exe), core.DefaultModelsFile)
}

// LoadModelRecords reads the models configuration file and validates every
// record into its typed form, keyed by model id. Validation happens once
// here; a malformed record fails the whole load with a FieldError.
func LoadModelRecords(path string, logger core.Logger) (map[string]core.ModelRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path from config, not user input
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rawRecords []map[string]any
	if err := sonic.Unmarshal(data, &rawRecords); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := make(map[string]core.ModelRecord, len(rawRecords))
	for i, raw := range rawRecords {
		record, err := validateRecord(raw, i)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if _, exists := records[record.ID]; exists {
			logger.Warn("Duplicate model id %q in %s, keeping the later record", record.ID, path)
		}
		records[record.ID] = record
	}

	logger.Info("Loaded %d model records from %s", len(records), path)
	return records, nil
}

// validateRecord converts one raw JSON object into a typed ModelRecord.
// index is the record's zero-based position, used to label records whose
// id field is itself missing or invalid.
func validateRecord(raw map[string]any, index int) (core.ModelRecord, error) {
	label := fmt.Sprintf("#%d", index+1)
	if id, ok := raw[fieldID].(string); ok && id != "" {
		label = id
	}

	var record core.ModelRecord

	id, err := stringField(raw, label, fieldID)
	if err != nil {
		return record, err
	}
	name, err := stringField(raw, label, fieldName)
	if err != nil {
		return record, err
	}
	endpoint, err := stringField(raw, label, fieldEndpoint)
	if err != nil {
		return record, err
	}
	apiKey, err := stringField(raw, label, fieldAPIKey)
	if err != nil {
		return record, err
	}
	availability, err := numberField(raw, label, fieldMockAvailability)
	if err != nil {
		return record, err
	}
	latency, err := numberField(raw, label, fieldLatency)
	if err != nil {
		return record, err
	}

	if availability < 0 || availability > 1 {
		return record, ErrInvalidValue(label, fieldMockAvailability, "within [0, 1]")
	}
	if latency < 0 {
		return record, ErrInvalidValue(label, fieldLatency, "non-negative")
	}

	record = core.ModelRecord{
		ID:               id,
		Name:             name,
		Endpoint:         endpoint,
		APIKey:           apiKey,
		MockAvailability: availability,
		Latency:          time.Duration(latency * float64(time.Second)),
	}
	return record, nil
}

func stringField(raw map[string]any, record, field string) (string, error) {
	value, ok := raw[field]
	if !ok {
		return "", ErrMissingField(record, field)
	}
	s, ok := value.(string)
	if !ok {
		return "", ErrInvalidType(record, field, "a string")
	}
	return s, nil
}

func numberField(raw map[string]any, record, field string) (float64, error) {
	value, ok := raw[field]
	if !ok {
		return 0, ErrMissingField(record, field)
	}
	f, ok := value.(float64)
	if !ok {
		return 0, ErrInvalidType(record, field, "a number")
	}
	return f, nil
}
