package task

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	Create(ctx context.Context, dto model.TaskDTO) (*entity.Task, error)
	UpdateByID(ctx context.Context, id int64, dto model.TaskDTO) (*entity.Task, error)
	DeleteByID(ctx context.Context, id int64) error
}
