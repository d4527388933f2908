package db

import (
	"context"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB     *gorm.DB
	Driver string
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB, driver string) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db, Driver: driver}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(gateway.Driver, err)
	}

	return pingHealth(ctx, gateway.Driver, sqlDB)
}
