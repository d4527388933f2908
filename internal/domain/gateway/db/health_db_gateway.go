package db

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// pingHealth pings the store and reports the outcome as a component status.
func pingHealth(ctx context.Context, driver string, store pinger) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := store.PingContext(ctx); err != nil {
		return downStatus(driver, err)
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  driver,
			"message": string(model.StatusUp),
		},
	}
}

func downStatus(driver string, err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"driver":  driver,
			"message": err.Error(),
		},
	}
}
