package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"labstock-backend/config"
	"labstock-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate runs schema migrations and ledger constraints. Split out of Init so
// tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.AssetType{},
		&model.Asset{},
		&model.LoanRecord{},
		&model.PushSubscription{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	if err := applyLedgerDDL(db); err != nil {
		return fmt.Errorf("ledger DDL failed: %w", err)
	}
	return nil
}

// applyLedgerDDL enforces at the storage level that an asset can have at most
// one open loan record. The loan protocol already guarantees this; the partial
// unique index makes the invariant structural rather than protocol-only.
func applyLedgerDDL(db *gorm.DB) error {
	ddl := "CREATE UNIQUE INDEX IF NOT EXISTS idx_loan_records_one_open " +
		"ON loan_records (asset_id) WHERE actual_return_date IS NULL"
	return db.Exec(ddl).Error
}
