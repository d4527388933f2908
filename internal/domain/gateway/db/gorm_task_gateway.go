package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTaskGateway struct {
	DB *gorm.DB
}

var _ TaskGateway = (*GormTaskGateway)(nil)

func NewGormTaskGateway(db *gorm.DB) *GormTaskGateway {
	return &GormTaskGateway{DB: db}
}

func (gateway *GormTaskGateway) FindAll(ctx context.Context) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	if err := gateway.DB.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.WithContext(ctx).Where("id = ?", id).Take(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &task, nil
}

func (gateway *GormTaskGateway) Create(ctx context.Context, task entity.Task) (*entity.Task, error) {
	row := entity.NewTask(0, task.Task, task.IsComplete, task.DueDate)
	if err := gateway.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return gateway.FindByID(ctx, row.ID)
}

func (gateway *GormTaskGateway) UpdateByID(ctx context.Context, id int64, updated entity.Task) (*entity.Task, error) {
	err := gateway.DB.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"task":        updated.Task,
			"is_complete": updated.IsComplete,
			"due_date":    updated.DueDate,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}

	return gateway.FindByID(ctx, id)
}

func (gateway *GormTaskGateway) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := gateway.DB.WithContext(ctx).Where("id = ?", id).Delete(&entity.Task{})
	if result.Error != nil {
		return false, fmt.Errorf("delete task %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
