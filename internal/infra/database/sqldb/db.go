package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"todo-api/internal/infra/database"
	"todo-api/pkg/msg"
)

var driverNames = map[string]string{
	database.DriverSQLite:   "sqlite3",
	database.DriverPostgres: "postgres",
}

// Open opens the store described by cfg and checks it is reachable.
// Idle connections are not kept, so every operation works on a connection of its own.
func Open(cfg database.Config) (*sql.DB, error) {
	driverName, ok := driverNames[cfg.Driver]
	if !ok {
		return nil, errors.New(msg.GetMessage("db.unknown-driver", cfg.Driver))
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	db.SetMaxIdleConns(0)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// InitSchema creates the tasks table if it does not exist yet.
func InitSchema(ctx context.Context, db *sql.DB, cfg database.Config) error {
	ddl, err := cfg.SchemaDDL()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table tasks: %w", err)
	}
	return nil
}
