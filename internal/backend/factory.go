package backend

import (
	"context"
	"errors"
	"fmt"

	"spesegen/internal/amqp"
	"spesegen/internal/cache"
	"spesegen/internal/generator"
	applog "spesegen/internal/log"
	"spesegen/internal/reports"
	"spesegen/internal/services"
	gsheet "spesegen/internal/sheets/google"
	"spesegen/internal/sheets/memory"
	"spesegen/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	store, err := storage.NewStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expense store: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	genCfg := generator.DefaultConfig()
	genCfg.Seed = config.GeneratorSeed
	gen, err := generator.New(genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	exporter, err := f.createExporter(ctx, config)
	if err != nil {
		return nil, err
	}

	reportCache := cache.NewReportCache(config.ReportCacheSize, config.ReportCacheTTL)

	opts := []services.Option{
		services.WithExporter(exporter),
		services.WithReportCache(reportCache),
		services.WithLogger(f.logger),
	}

	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without batch events", applog.FieldError, err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			opts = append(opts, services.WithPublisher(amqpClient))
		}
	}

	catalog := reports.NewCatalog(store)
	dashboard := services.NewDashboard(store, catalog, gen, opts...)

	f.logger.Info("Initialized dashboard backend",
		applog.FieldDBPath, config.SQLiteDBPath,
		applog.FieldBackend, config.Export.String(),
		"amqp_enabled", amqpClient != nil,
		"report_cache", reportCache.Enabled())

	return &BackendResult{
		Dashboard: dashboard,
		Store:     store,
		Reports:   catalog,
		Exporter:  exporter,
		Cache:     reportCache,
		Cleanup: func() error {
			if amqpClient == nil {
				return nil
			}
			return amqpClient.Close()
		},
	}, nil
}

func (f *DefaultFactory) createExporter(ctx context.Context, config Config) (services.ReportExporter, error) {
	switch config.Export {
	case SheetsExport:
		exp, err := gsheet.NewWithServiceAccount(ctx,
			config.GoogleSpreadsheetID,
			config.GoogleServiceAccountJSON,
			config.GoogleServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Sheets exporter: %w", err)
		}
		f.logger.Info("Initialized Google Sheets exporter")
		return exp, nil
	case MemoryExport:
		return memory.New(), nil
	default:
		return nil, errors.New("unsupported export backend: " + config.Export.String())
	}
}
