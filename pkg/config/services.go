package config

import (
	"errors"
	"fmt"
	"time"
)

// CatalogConfig extends BaseConfig with catalog-specific settings
type CatalogConfig struct {
	BaseConfig `koanf:",squash"`
	Catalog    CatalogSettings `koanf:"catalog"`
}

// CatalogSettings contains catalog service specific settings
type CatalogSettings struct {
	CacheTTL    time.Duration    `koanf:"cache_ttl"`
	AutoMigrate bool             `koanf:"auto_migrate"` // apply pending migrations on startup
	Events      EventsSettings   `koanf:"events"`
	Pictures    PicturesSettings `koanf:"pictures"`
}

// EventsSettings selects where catalog change events are published.
type EventsSettings struct {
	Publisher string        `koanf:"publisher"` // local, nats, kafka
	NATS      NATSSettings  `koanf:"nats"`
	Kafka     KafkaSettings `koanf:"kafka"`
}

// NATSSettings contains NATS JetStream connection settings.
type NATSSettings struct {
	URL           string        `koanf:"url"`
	ClientID      string        `koanf:"client_id"`
	Stream        string        `koanf:"stream"`
	MaxReconnect  int           `koanf:"max_reconnect"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// KafkaSettings contains Kafka producer settings.
type KafkaSettings struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
}

// PicturesSettings selects where picture content is kept.
type PicturesSettings struct {
	Storage   string `koanf:"storage"` // database, local, s3
	LocalPath string `koanf:"local_path"`
	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
	Region    string `koanf:"region"`
}

// Validate validates the catalog configuration
func (c *CatalogConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if c.Catalog.CacheTTL < 0 {
		return errors.New("cache ttl mustn't be negative")
	}

	switch c.Catalog.Events.Publisher {
	case PublisherLocal:
	case PublisherNATS:
		if c.Catalog.Events.NATS.URL == "" {
			return errors.New("nats url is required")
		}
		if c.Catalog.Events.NATS.Stream == "" {
			return errors.New("nats stream is required")
		}
	case PublisherKafka:
		if len(c.Catalog.Events.Kafka.Brokers) == 0 {
			return errors.New("at least one kafka broker is required")
		}
		if c.Catalog.Events.Kafka.Topic == "" {
			return errors.New("kafka topic is required")
		}
	default:
		return fmt.Errorf("unsupported event publisher: %q", c.Catalog.Events.Publisher)
	}

	switch c.Catalog.Pictures.Storage {
	case StorageDatabase:
	case StorageLocal:
		if c.Catalog.Pictures.LocalPath == "" {
			return errors.New("local path is required for local picture storage")
		}
	case StorageS3:
		if c.Catalog.Pictures.Bucket == "" {
			return errors.New("bucket is required for s3 picture storage")
		}
	default:
		return fmt.Errorf("unsupported picture storage: %q", c.Catalog.Pictures.Storage)
	}
	return nil
}

// GetDefaultCatalogConfig returns default catalog configuration
func GetDefaultCatalogConfig() *CatalogConfig {
	base := GetDefaults()
	base.Service.Name = "catalog"

	return &CatalogConfig{
		BaseConfig: *base,
		Catalog: CatalogSettings{
			CacheTTL: DefaultCacheTTL,
			Events: EventsSettings{
				Publisher: PublisherLocal,
				NATS: NATSSettings{
					URL:           "nats://localhost:4222",
					ClientID:      "catalog",
					Stream:        "CATALOG",
					MaxReconnect:  DefaultNATSMaxReconnect,
					ReconnectWait: DefaultNATSReconnectWait,
				},
				Kafka: KafkaSettings{
					Brokers: []string{"localhost:9092"},
					Topic:   "catalog-events",
				},
			},
			Pictures: PicturesSettings{
				Storage:   StorageDatabase,
				LocalPath: "./data/pictures",
				Prefix:    "pictures/",
				Region:    "us-east-1",
			},
		},
	}
}
