package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"todo-api/internal/domain/entity"
)

var ErrMissingTask = errors.New("field task is required")

// TaskDTO is the body accepted by create and update. Fields left out of the
// body take their defaults: is_complete 0 and due_date null.
type TaskDTO struct {
	Task       *string  `json:"task"`
	IsComplete *IntFlag `json:"is_complete"`
	DueDate    *string  `json:"due_date"`
}

// Validate reports whether the body carries the required task field.
func (dto TaskDTO) Validate() error {
	if dto.Task == nil {
		return ErrMissingTask
	}
	return nil
}

// ToEntity returns the Task described by the body, with the given id.
func (dto TaskDTO) ToEntity(id int64) entity.Task {
	var isComplete int64
	if dto.IsComplete != nil {
		isComplete = int64(*dto.IsComplete)
	}

	var task string
	if dto.Task != nil {
		task = *dto.Task
	}

	return entity.NewTask(id, task, isComplete, dto.DueDate)
}

// IntFlag is an integer that also accepts booleans, integral floats and
// numeric strings. Its value is kept verbatim, it is not clamped to 0 or 1.
type IntFlag int64

func (f *IntFlag) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = 0
		return nil
	case bool:
		if v {
			*f = 1
		} else {
			*f = 0
		}
		return nil
	case json.Number:
		return f.setNumber(v.String())
	case string:
		return f.setNumber(strings.TrimSpace(v))
	default:
		return fmt.Errorf("is_complete must be an integer, got %s", string(data))
	}
}

func (f *IntFlag) setNumber(s string) error {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = IntFlag(i)
		return nil
	}

	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(fl, 0) || fl != math.Trunc(fl) || math.Abs(fl) >= math.MaxInt64 {
		return fmt.Errorf("is_complete must be an integer, got %q", s)
	}
	*f = IntFlag(int64(fl))
	return nil
}
