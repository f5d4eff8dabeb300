package main

import (
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	pkglogger "github.com/narwhalmedia/catalog/pkg/logger"
)

func main() {
	var (
		status = flag.Bool("status", false, "Show migration status")
		dryRun = flag.Bool("dry-run", false, "Show pending migrations without applying them")
	)
	flag.Parse()

	cfg := config.MustLoadServiceConfig("catalog", config.GetDefaultCatalogConfig())

	logger, err := pkglogger.NewFromConfig(cfg.Logger.ToLoggerConfig(&cfg.Service))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database.ToDatabaseConfig(), logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	switch {
	case *status:
		showMigrationStatus(db, logger)
	case *dryRun:
		showPendingMigrations(db, logger)
	default:
		runMigrations(db, logger)
	}
}

// runMigrations applies all pending migrations
func runMigrations(db *gorm.DB, logger interfaces.Logger) {
	fmt.Println("Running database migrations...")

	if err := database.RunMigrations(db, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fmt.Println("Migrations completed successfully!")
}

// showMigrationStatus displays the current migration status
func showMigrationStatus(db *gorm.DB, logger interfaces.Logger) {
	var migrations []database.Migration
	if db.Migrator().HasTable(&database.Migration{}) {
		if err := db.Order("applied_at DESC").Find(&migrations).Error; err != nil {
			log.Fatalf("Failed to get migrations: %v", err)
		}
	}

	if len(migrations) == 0 {
		fmt.Println("No migrations have been applied yet.")
	} else {
		fmt.Println("Applied migrations:")
		fmt.Println("==================")
		for _, m := range migrations {
			fmt.Printf("%s | %s | Applied at: %s\n", m.Version, m.Name, m.AppliedAt.Format("2006-01-02 15:04:05"))
		}
	}

	pending, err := database.GetPendingMigrations(db, logger)
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) > 0 {
		fmt.Println("\nPending migrations:")
		fmt.Println("==================")
		for _, m := range pending {
			fmt.Printf("%s | %s\n", m.Version, m.Name)
		}
	} else {
		fmt.Println("\nAll migrations are up to date!")
	}
}

// showPendingMigrations displays migrations that would be applied
func showPendingMigrations(db *gorm.DB, logger interfaces.Logger) {
	pending, err := database.GetPendingMigrations(db, logger)
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending migrations.")
		return
	}

	fmt.Println("Pending migrations that would be applied:")
	fmt.Println("========================================")
	for _, m := range pending {
		fmt.Printf("%s | %s\n", m.Version, m.Name)
	}
}
