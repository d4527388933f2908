package db

import (
	"context"
	"path/filepath"
	"testing"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/internal/infra/database"
	"todo-api/internal/infra/database/gormdb"
	"todo-api/internal/infra/database/sqldb"
)

func strPtr(s string) *string {
	return &s
}

func newSQLGateways(t *testing.T) (TaskGateway, HealthDBGateway) {
	t.Helper()

	cfg := database.SQLiteConfig(filepath.Join(t.TempDir(), "todolist.db"))
	store, err := sqldb.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := sqldb.InitSchema(context.Background(), store, cfg); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}
	return NewSQLTaskGateway(store), NewSQLHealthDBGateway(store, cfg.Driver)
}

func newGormGateways(t *testing.T) (TaskGateway, HealthDBGateway) {
	t.Helper()

	cfg := database.SQLiteConfig(filepath.Join(t.TempDir(), "todolist.db"))
	cfg.Client = database.ClientGorm
	store, err := gormdb.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := store.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := gormdb.InitSchema(context.Background(), store, cfg); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}
	return NewGormTaskGateway(store), NewGormHealthDBGateway(store, cfg.Driver)
}

var gatewayFactories = map[string]func(t *testing.T) (TaskGateway, HealthDBGateway){
	"sql":  newSQLGateways,
	"gorm": newGormGateways,
}

func TestTaskGatewayCreateAndFind(t *testing.T) {
	for name, factory := range gatewayFactories {
		t.Run(name, func(t *testing.T) {
			gateway, _ := factory(t)
			ctx := context.Background()

			created, err := gateway.Create(ctx, entity.NewTask(0, "buy milk", 0, strPtr("2024-01-01")))
			if err != nil {
				t.Fatalf("Failed to create task: %v", err)
			}
			if created.ID != 1 {
				t.Errorf("Expected first id to be 1, got %d", created.ID)
			}

			found, err := gateway.FindByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("Failed to find task: %v", err)
			}
			if found == nil {
				t.Fatal("Expected task to be found")
			}
			if found.Task != "buy milk" || found.IsComplete != 0 || found.DueDate == nil || *found.DueDate != "2024-01-01" {
				t.Errorf("Unexpected task: %+v", found)
			}

			withoutDue, err := gateway.Create(ctx, entity.NewTask(0, "no due date", 7, nil))
			if err != nil {
				t.Fatalf("Failed to create task: %v", err)
			}
			if withoutDue.ID <= created.ID {
				t.Errorf("Expected ids to increase, got %d after %d", withoutDue.ID, created.ID)
			}
			if withoutDue.DueDate != nil {
				t.Errorf("Expected nil due date, got %q", *withoutDue.DueDate)
			}
			if withoutDue.IsComplete != 7 {
				t.Errorf("Expected is_complete 7 to be stored verbatim, got %d", withoutDue.IsComplete)
			}
		})
	}
}

func TestTaskGatewayFindAll(t *testing.T) {
	for name, factory := range gatewayFactories {
		t.Run(name, func(t *testing.T) {
			gateway, _ := factory(t)
			ctx := context.Background()

			empty, err := gateway.FindAll(ctx)
			if err != nil {
				t.Fatalf("Failed to list tasks: %v", err)
			}
			if empty == nil || len(empty) != 0 {
				t.Errorf("Expected empty non-nil slice, got %#v", empty)
			}

			ids := make(map[int64]bool)
			for _, name := range []string{"a", "b", "c"} {
				created, err := gateway.Create(ctx, entity.NewTask(0, name, 0, nil))
				if err != nil {
					t.Fatalf("Failed to create task: %v", err)
				}
				ids[created.ID] = true
			}

			tasks, err := gateway.FindAll(ctx)
			if err != nil {
				t.Fatalf("Failed to list tasks: %v", err)
			}
			if len(tasks) != len(ids) {
				t.Fatalf("Expected %d tasks, got %d", len(ids), len(tasks))
			}
			for _, task := range tasks {
				if !ids[task.ID] {
					t.Errorf("Unexpected task id %d", task.ID)
				}
			}
		})
	}
}

func TestTaskGatewayUpdate(t *testing.T) {
	for name, factory := range gatewayFactories {
		t.Run(name, func(t *testing.T) {
			gateway, _ := factory(t)
			ctx := context.Background()

			created, err := gateway.Create(ctx, entity.NewTask(0, "buy milk", 0, strPtr("2024-01-01")))
			if err != nil {
				t.Fatalf("Failed to create task: %v", err)
			}

			updated, err := gateway.UpdateByID(ctx, created.ID, entity.NewTask(0, "buy bread", 1, nil))
			if err != nil {
				t.Fatalf("Failed to update task: %v", err)
			}
			if updated == nil {
				t.Fatal("Expected updated task")
			}
			if updated.ID != created.ID || updated.Task != "buy bread" || updated.IsComplete != 1 || updated.DueDate != nil {
				t.Errorf("Unexpected updated task: %+v", updated)
			}

			missing, err := gateway.UpdateByID(ctx, 404, entity.NewTask(0, "ghost", 0, nil))
			if err != nil {
				t.Fatalf("Failed to update missing task: %v", err)
			}
			if missing != nil {
				t.Errorf("Expected nil for missing task, got %+v", missing)
			}
		})
	}
}

func TestTaskGatewayDelete(t *testing.T) {
	for name, factory := range gatewayFactories {
		t.Run(name, func(t *testing.T) {
			gateway, _ := factory(t)
			ctx := context.Background()

			created, err := gateway.Create(ctx, entity.NewTask(0, "buy milk", 0, nil))
			if err != nil {
				t.Fatalf("Failed to create task: %v", err)
			}

			deleted, err := gateway.DeleteByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("Failed to delete task: %v", err)
			}
			if !deleted {
				t.Error("Expected first delete to remove a row")
			}

			deleted, err = gateway.DeleteByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("Failed to delete task: %v", err)
			}
			if deleted {
				t.Error("Expected second delete to remove nothing")
			}

			found, err := gateway.FindByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("Failed to find task: %v", err)
			}
			if found != nil {
				t.Errorf("Expected deleted task to be gone, got %+v", found)
			}
		})
	}
}

func TestHealthDBGateway(t *testing.T) {
	for name, factory := range gatewayFactories {
		t.Run(name, func(t *testing.T) {
			_, health := factory(t)

			status := health.Health(context.Background())
			if status.Status != model.StatusUp {
				t.Errorf("Expected status UP, got %s (%v)", status.Status, status.Details)
			}
			if status.Details["driver"] != database.DriverSQLite {
				t.Errorf("Expected driver detail sqlite, got %q", status.Details["driver"])
			}
		})
	}
}

func TestSQLHealthDBGatewayDown(t *testing.T) {
	cfg := database.SQLiteConfig(filepath.Join(t.TempDir(), "todolist.db"))
	store, err := sqldb.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	store.Close()

	status := NewSQLHealthDBGateway(store, cfg.Driver).Health(context.Background())
	if status.Status != model.StatusDown {
		t.Errorf("Expected status DOWN for a closed store, got %s", status.Status)
	}
}
