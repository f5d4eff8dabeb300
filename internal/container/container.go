// Package container wires the catalog service dependencies.
package container

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// CatalogContainer holds all dependencies of the catalog service
type CatalogContainer struct {
	Config   *config.CatalogConfig
	Logger   interfaces.Logger
	DB       *gorm.DB
	Broker   *Broker
	EventBus interfaces.EventBus
	Catalog  *catalog.Catalog
}

// Ready reports whether the database and the event broker are reachable.
func (c *CatalogContainer) Ready(ctx context.Context) error {
	if err := database.Ping(c.DB); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if c.Broker.Health != nil {
		if err := c.Broker.Health(ctx); err != nil {
			return fmt.Errorf("event broker: %w", err)
		}
	}
	return nil
}
