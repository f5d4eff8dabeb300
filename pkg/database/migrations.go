package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Migration represents a database migration
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Version   string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name.
func (Migration) TableName() string { return "schema_migrations" }

// MigrationFunc is a function that performs a migration
type MigrationFunc func(*gorm.DB) error

// MigrationEntry represents a single migration
type MigrationEntry struct {
	Version string
	Name    string
	Up      MigrationFunc
}

// Migrator handles database migrations
type Migrator struct {
	db         *gorm.DB
	logger     interfaces.Logger
	migrations []MigrationEntry
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *gorm.DB, logger interfaces.Logger) *Migrator {
	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: getAllMigrations(),
	}
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.applied()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		m.logger.Info("Running migration",
			interfaces.String("version", migration.Version),
			interfaces.String("name", migration.Name))

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&Migration{
				Version:   migration.Version,
				Name:      migration.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Version, err)
		}

		m.logger.Info("Completed migration", interfaces.String("version", migration.Version))
	}

	return nil
}

// GetPendingMigrations returns a list of pending migrations
func (m *Migrator) GetPendingMigrations() ([]MigrationEntry, error) {
	if !m.db.Migrator().HasTable(&Migration{}) {
		return m.migrations, nil
	}

	applied, err := m.applied()
	if err != nil {
		return nil, err
	}

	var pending []MigrationEntry
	for _, migration := range m.migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}
	return pending, nil
}

func (m *Migrator) applied() (map[string]bool, error) {
	var migrations []Migration
	if err := m.db.Find(&migrations).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(migrations))
	for _, migration := range migrations {
		applied[migration.Version] = true
	}
	return applied, nil
}

// getAllMigrations returns all migrations in order
func getAllMigrations() []MigrationEntry {
	return []MigrationEntry{
		{
			Version: "20240101_001",
			Name:    "Create catalog schema",
			Up:      migration001CreateCatalogSchema,
		},
		{
			Version: "20240101_002",
			Name:    "Add ordering indexes",
			Up:      migration002AddOrderingIndexes,
		},
	}
}

func migration001CreateCatalogSchema(tx *gorm.DB) error {
	if err := tx.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("failed to migrate catalog models: %w", err)
	}
	return nil
}

// migration002AddOrderingIndexes indexes the (parent, position) pairs every
// child collection is read by.
func migration002AddOrderingIndexes(tx *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_media_movie_position ON media(movie_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_seasons_show_position ON seasons(show_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_episodes_season_position ON episodes(season_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_songs_music_position ON songs(music_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_cheat_data_cheat_position ON cheat_data(cheat_id, position)",
	}

	for _, index := range indexes {
		if err := tx.Exec(index).Error; err != nil && !isAlreadyExistsError(err) {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func isAlreadyExistsError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
