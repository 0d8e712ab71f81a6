package infra

import (
	"fmt"

	"revup/internal/config"
	"revup/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the store selected by cfg.DBDriver, ensures the items,
// sales and users tables exist and seeds the default accounts.
//
// The pool is pinned to a single connection: the application holds one
// connection for its lifetime and relies on the store for write serialization.
// Callers own the returned handle and must release it with Close.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return Open(dialector)
}

// Open is NewDatabase for an already built dialector (tests use in-memory SQLite).
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := RunMigrations(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations creates missing tables and inserts the default users when
// absent. Existing rows are never overwritten, so a changed password in the
// users table survives restarts.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Item{}, &model.Sale{}, &model.User{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	for _, u := range model.DefaultUsers {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
