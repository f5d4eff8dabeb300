//go:build wireinject
// +build wireinject

package container

import (
	"context"

	"github.com/google/wire"

	"github.com/narwhalmedia/catalog/pkg/config"
)

// InitializeCatalog creates the catalog service with all dependencies
func InitializeCatalog(ctx context.Context, cfg *config.CatalogConfig) (*CatalogContainer, func(), error) {
	wire.Build(
		// Logging
		ProvideLogger,

		// Storage
		ProvideDB,
		ProvideCache,
		ProvideBlobStore,

		// Events
		ProvideBroker,
		ProvideEventBus,

		// Catalog
		ProvideCatalog,

		// Container
		wire.Struct(new(CatalogContainer), "*"),
	)

	return nil, nil, nil
}
