package db

import (
	"context"
	"database/sql"

	"todo-api/internal/domain/model"
)

type SQLHealthDBGateway struct {
	DB     *sql.DB
	Driver string
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB, driver string) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db, Driver: driver}
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	return pingHealth(ctx, gateway.Driver, gateway.DB)
}
