package entity

// Task is a single to-do item stored in the tasks table.
type Task struct {
	ID         int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Task       string  `json:"task" gorm:"column:task;not null"`
	IsComplete int64   `json:"is_complete" gorm:"column:is_complete;not null"`
	DueDate    *string `json:"due_date" gorm:"column:due_date"`
}

func (Task) TableName() string {
	return "tasks"
}

// NewTask builds a Task from its stored columns.
func NewTask(id int64, task string, isComplete int64, dueDate *string) Task {
	return Task{
		ID:         id,
		Task:       task,
		IsComplete: isComplete,
		DueDate:    dueDate,
	}
}
