package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// TaskGateway persists tasks. Lookups of a missing id return a nil task and a nil error.
type TaskGateway interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	Create(ctx context.Context, task entity.Task) (*entity.Task, error)
	UpdateByID(ctx context.Context, id int64, updated entity.Task) (*entity.Task, error)

	// DeleteByID reports whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
