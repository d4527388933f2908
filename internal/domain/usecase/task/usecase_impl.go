package task

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// ErrTaskNotFound is returned when an operation references an id with no stored task.
var ErrTaskNotFound = errors.New("task not found")

type taskUseCase struct {
	gateway db.TaskGateway
}

func NewTaskUseCase(gateway db.TaskGateway) UseCase {
	return &taskUseCase{
		gateway: gateway,
	}
}

func (uc *taskUseCase) FindAll(ctx context.Context) ([]entity.Task, error) {
	return uc.gateway.FindAll(ctx)
}

func (uc *taskUseCase) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (uc *taskUseCase) Create(ctx context.Context, dto model.TaskDTO) (*entity.Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, dto.ToEntity(0))
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrTaskNotFound
	}

	log.Info(msg.GetMessage("task.created", created.ID), zap.Int64("task_id", created.ID))
	return created, nil
}

// UpdateByID overwrites every mutable field. A missing id is detected by the
// re-select that follows the update.
func (uc *taskUseCase) UpdateByID(ctx context.Context, id int64, dto model.TaskDTO) (*entity.Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.UpdateByID(ctx, id, dto.ToEntity(id))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}

	log.Info(msg.GetMessage("task.updated", id), zap.Int64("task_id", id))
	return updated, nil
}

func (uc *taskUseCase) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := uc.gateway.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}

	log.Info(msg.GetMessage("task.removed", id), zap.Int64("task_id", id))
	return nil
}
