package database

import (
	"fmt"
	"time"

	"github.com/justsurfingit/scrapnalyze/internal/logger"
	"github.com/justsurfingit/scrapnalyze/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres pool. The returned handle is shared by the
// store, which derives a fresh session from it for every call.
func Connect(dsn string, autoMigrate bool) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), autoMigrate)
}

// Open is Connect for an arbitrary dialector.
func Open(dialector gorm.Dialector, autoMigrate bool) (*gorm.DB, error) {
	log := logger.Get()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, gormlogger.Warn, 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info().Str("dialect", dialector.Name()).Msg("Database connection established")

	if autoMigrate {
		// Only makes sure the table exists; the scraper owns the data.
		log.Info().Msg("Running migrations")
		if err := db.AutoMigrate(&models.JobRecord{}); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
