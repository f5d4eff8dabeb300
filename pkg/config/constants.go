package config

import "time"

const (
	// Server ports.
	DefaultHTTPPort = 8080
	DefaultGRPCPort = 9090

	// Database defaults.
	DriverPostgres      = "postgres"
	DriverSQLite        = "sqlite"
	DefaultPostgresPort = 5432

	// Connection pool defaults.
	DefaultMaxConnections = 25
	DefaultMinConnections = 5

	// Timeout defaults.
	DefaultMaxConnLifetime = time.Hour
	DefaultMaxConnIdleTime = 30 * time.Minute

	// Catalog defaults.
	DefaultCacheTTL          = 5 * time.Minute
	DefaultNATSMaxReconnect  = 10
	DefaultNATSReconnectWait = 2 * time.Second

	// Event publishers.
	PublisherLocal = "local"
	PublisherNATS  = "nats"
	PublisherKafka = "kafka"

	// Picture storages.
	StorageDatabase = "database"
	StorageLocal    = "local"
	StorageS3       = "s3"
)
