package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-api/internal/domain/entity"
)

type SQLTaskGateway struct {
	DB *sql.DB
}

var _ TaskGateway = (*SQLTaskGateway)(nil)

func NewSQLTaskGateway(db *sql.DB) *SQLTaskGateway {
	return &SQLTaskGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (entity.Task, error) {
	var (
		id         int64
		task       string
		isComplete int64
		dueDate    sql.NullString
	)
	if err := row.Scan(&id, &task, &isComplete, &dueDate); err != nil {
		return entity.Task{}, err
	}

	var due *string
	if dueDate.Valid {
		due = &dueDate.String
	}
	return entity.NewTask(id, task, isComplete, due), nil
}

func (gateway *SQLTaskGateway) FindAll(ctx context.Context) (tasks []entity.Task, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT id, task, is_complete, due_date
		FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make([]entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		results = append(results, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	return results, nil
}

func (gateway *SQLTaskGateway) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := scanTask(gateway.DB.QueryRowContext(ctx, `
		SELECT id, task, is_complete, due_date
		FROM tasks
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &task, nil
}

func (gateway *SQLTaskGateway) Create(ctx context.Context, task entity.Task) (*entity.Task, error) {
	var id int64
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (task, is_complete, due_date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		task.Task, task.IsComplete, task.DueDate).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return gateway.FindByID(ctx, id)
}

func (gateway *SQLTaskGateway) UpdateByID(ctx context.Context, id int64, updated entity.Task) (*entity.Task, error) {
	_, err := gateway.DB.ExecContext(ctx, `
		UPDATE tasks
		SET task = $1, is_complete = $2, due_date = $3
		WHERE id = $4`,
		updated.Task, updated.IsComplete, updated.DueDate, id)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}

	return gateway.FindByID(ctx, id)
}

func (gateway *SQLTaskGateway) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	return affected > 0, nil
}
