package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/infra/database"
	"todo-api/pkg/msg"
)

// Open opens the store described by cfg through gorm.
func Open(cfg database.Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case database.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case database.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, errors.New(msg.GetMessage("db.unknown-driver", cfg.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(0)

	return db, nil
}

// InitSchema creates the tasks table if it does not exist yet.
// It runs the same DDL as the sql client.
func InitSchema(ctx context.Context, db *gorm.DB, cfg database.Config) error {
	ddl, err := cfg.SchemaDDL()
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return fmt.Errorf("create table tasks: %w", err)
	}
	return nil
}
