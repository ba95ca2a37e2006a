package main

import (
	"context"
	"errors"
	"os"
	"time"

	"spesegen/internal/amqp"
	"spesegen/internal/backend"
	"spesegen/internal/cli"
	applog "spesegen/internal/log"
	"spesegen/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg.LogLevel, os.Stdout).WithComponent(applog.ComponentAMQP)

	logger.Info("Starting spesegen-events")

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the events worker")
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}
	// the worker only consumes; the dashboard it builds never publishes
	backendCfg.AMQPURL = ""

	res, err := backend.NewFactory(logger).CreateBackend(context.Background(), backendCfg)
	if err != nil {
		logger.Error("Failed to create backend", applog.FieldError, err)
		os.Exit(1)
	}
	defer res.Cleanup()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}

	syncWorker := worker.NewSyncWorker(res.Reports, res.Exporter, nil, logger)

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, func(context.Context) {
		if err := amqpClient.Close(); err != nil {
			logger.Error("AMQP close error", applog.FieldError, err)
		}
	})

	// Catch up on batches appended while the worker was down
	logger.Info("Performing startup sync")
	if err := syncWorker.SyncReports(ctx); err != nil {
		logger.Error("Startup sync failed", applog.FieldError, err)
	}

	go func() {
		if err := amqpClient.ConsumeBatchAppended(ctx, syncWorker.HandleBatchAppended); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Message consumption failed", applog.FieldError, err)
		}
	}()

	if cfg.SyncInterval > 0 {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := syncWorker.SyncReports(ctx); err != nil {
						logger.Error("Periodic sync failed", applog.FieldError, err)
					}
				}
			}
		}()
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("spesegen-events stopped")
}
