package storage

import (
	"context"
	"os"

	"llmhealth/internal/core"
	"llmhealth/internal/util"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const (
	historyRedisKey = "llmhealth:history"
)

// FileStorage implements persistence using JSON files
type FileStorage struct {
	filePath string
}

func NewFileStorage(filePath string) *FileStorage {
	if filePath == "" {
		filePath = core.DefaultHistoryFile
	}
	return &FileStorage{filePath: filePath}
}

func (fs *FileStorage) SaveStats(stats *core.ProbeStats) error {
	data, err := sonic.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.filePath, data, core.FilePermissionReadWrite)
}

func (fs *FileStorage) LoadStats() (*core.ProbeStats, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &core.ProbeStats{ProbeHistory: []core.ProbeRecord{}}, nil
		}
		return nil, err
	}

	var stats core.ProbeStats
	if err := sonic.Unmarshal(data, &stats); err != nil {
		return nil, err
	}

	if stats.ProbeHistory == nil {
		stats.ProbeHistory = []core.ProbeRecord{}
	}

	return &stats, nil
}

func (fs *FileStorage) Close() error {
	return nil
}

// RedisStorage implements persistence using Redis
type RedisStorage struct {
	client *redis.Client
	key    string
}

// RedisStorageConfig Redis storage config
type RedisStorageConfig struct {
	URL string
	Key string
}

func NewRedisStorage(config RedisStorageConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	key := config.Key
	if key == "" {
		key = historyRedisKey
	}

	return &RedisStorage{client: client, key: key}, nil
}

func (rs *RedisStorage) SaveStats(stats *core.ProbeStats) error {
	data, err := util.MarshalJSON(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(context.Background(), rs.key, data, 0).Err()
}

func (rs *RedisStorage) LoadStats() (*core.ProbeStats, error) {
	val, err := rs.client.Get(context.Background(), rs.key).Result()
	if err != nil {
		if err == redis.Nil {
			return &core.ProbeStats{ProbeHistory: []core.ProbeRecord{}}, nil
		}
		return nil, err
	}

	var stats core.ProbeStats
	if err := sonic.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}

	if stats.ProbeHistory == nil {
		stats.ProbeHistory = []core.ProbeRecord{}
	}

	return &stats, nil
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

// InitStorage selects the probe history backend from the environment.
// Redis wins when REDIS_URL is set, then a JSON file when
// HEALTH_HISTORY_FILE names one. With neither, history is discarded so a
// plain probe run leaves nothing behind.
func InitStorage(logger core.Logger) core.StorageInterface {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStorage, err := NewRedisStorage(RedisStorageConfig{
			URL: redisURL,
			Key: historyRedisKey,
		})
		if err != nil {
			logger.Warn("Failed to initialize Redis storage: %v, falling back", err)
		} else {
			logger.Debug("Using Redis history storage")
			return redisStorage
		}
	}

	if filePath := os.Getenv("HEALTH_HISTORY_FILE"); filePath != "" {
		logger.Debug("Using file history storage at %s", filePath)
		return NewFileStorage(filePath)
	}

	logger.Debug("No history storage configured, probe history will not be kept")
	return &core.NopStorage{}
}
