package container

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/kafka"
	natsevents "github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/catalog/internal/infrastructure/storage"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	pkglogger "github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/pkg/utils"
)

// Broker forwards catalog events to an external message broker.
// Handler is nil when events stay in process.
type Broker struct {
	Handler interfaces.EventHandler
	Health  func(ctx context.Context) error
}

// ProvideLogger builds the service logger from the logger section.
func ProvideLogger(cfg *config.CatalogConfig) (interfaces.Logger, func(), error) {
	logger, err := pkglogger.NewFromConfig(cfg.Logger.ToLoggerConfig(&cfg.Service))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideDB opens the database and applies pending migrations when enabled.
func ProvideDB(cfg *config.CatalogConfig, logger interfaces.Logger) (*gorm.DB, func(), error) {
	db, err := database.Open(cfg.Database.ToDatabaseConfig(), logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", interfaces.Error(err))
		}
	}

	if cfg.Catalog.AutoMigrate {
		if err := database.RunMigrations(db, logger); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return db, cleanup, nil
}

// ProvideCache creates the in-memory cache of ordered lists.
func ProvideCache() (interfaces.Cache, func()) {
	cache := utils.NewInMemoryCache()
	return cache, cache.Close
}

// ProvideBroker connects the configured event publisher.
func ProvideBroker(cfg *config.CatalogConfig, logger interfaces.Logger) (*Broker, func(), error) {
	settings := cfg.Catalog.Events

	switch settings.Publisher {
	case config.PublisherNATS:
		client, cleanup, err := natsevents.NewClient(settings.NATS, logger)
		if err != nil {
			return nil, nil, err
		}
		return &Broker{Handler: natsevents.NewPublisher(client, logger), Health: client.Health}, cleanup, nil

	case config.PublisherKafka:
		publisher, err := kafka.NewPublisher(settings.Kafka.Brokers, settings.Kafka.Topic, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close kafka producer", interfaces.Error(err))
			}
		}
		return &Broker{Handler: publisher}, cleanup, nil

	default:
		return &Broker{}, func() {}, nil
	}
}

// ProvideEventBus creates the event bus and subscribes the broker to every event.
func ProvideEventBus(broker *Broker, logger interfaces.Logger) (interfaces.EventBus, func(), error) {
	bus := events.NewInMemoryEventBus(logger)
	if broker.Handler != nil {
		if err := bus.Subscribe(interfaces.AllEvents, broker.Handler); err != nil {
			return nil, nil, fmt.Errorf("failed to subscribe event publisher: %w", err)
		}
	}

	cleanup := func() {
		if err := bus.Stop(); err != nil {
			logger.Error("Failed to stop event bus", interfaces.Error(err))
		}
	}
	return bus, cleanup, nil
}

// ProvideBlobStore selects where picture content is kept. A nil store keeps it in the database.
func ProvideBlobStore(ctx context.Context, cfg *config.CatalogConfig, logger interfaces.Logger) (interfaces.BlobStore, error) {
	pictures := cfg.Catalog.Pictures

	switch pictures.Storage {
	case config.StorageLocal:
		return storage.NewLocalStorage(pictures.LocalPath, logger)
	case config.StorageS3:
		return storage.NewS3Storage(ctx, pictures.Bucket, pictures.Prefix, pictures.Region, logger)
	default:
		return nil, nil
	}
}

// ProvideCatalog assembles the catalog facades.
func ProvideCatalog(cfg *config.CatalogConfig, db *gorm.DB, cache interfaces.Cache, bus interfaces.EventBus, blobs interfaces.BlobStore, logger interfaces.Logger) *catalog.Catalog {
	return catalog.New(db, cache, bus, logger, catalog.Options{
		CacheTTL: cfg.Catalog.CacheTTL,
		Blobs:    blobs,
	})
}
