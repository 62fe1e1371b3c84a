package main

import (
	"context"
	"os"

	"llmhealth/internal/cli"
	"llmhealth/internal/config"
	logpkg "llmhealth/internal/log"
	"llmhealth/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

// run keeps the exit code separate from os.Exit so deferred cleanup fires.
func run() int {
	dotenvErr := godotenv.Load()

	logger := logpkg.CreateLogger()
	defer func() {
		if appLog, ok := logger.(*logpkg.AppLogger); ok {
			_ = appLog.Close()
		}
	}()

	if dotenvErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	storageInstance := storage.InitStorage(logger)
	defer func() { _ = storageInstance.Close() }()

	cfg := config.LoadProbeConfigFromEnv(logger)
	cfg.Storage = storageInstance
	cfg.Logger = logger
	cfg.Stdout = os.Stdout

	app := cli.New(cfg)
	return app.Run(context.Background(), os.Args[1:])
}
