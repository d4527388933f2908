package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application/server"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/task"
	"todo-api/internal/infra/database"
	"todo-api/internal/infra/database/gormdb"
	"todo-api/internal/infra/database/sqldb"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init store, the tasks table must exist before the first request
	dbConfig := database.ConfigFromResource()
	taskGateway, healthGateway, closeStore, err := openGateways(ctx, dbConfig)
	if err != nil {
		log.Fatal(msg.GetMessage("db.open-failed", dbConfig.Driver), zap.Error(err))
	}
	defer closeStore()
	log.Info(msg.GetMessage("db.schema-ready"), zap.String("driver", dbConfig.Driver), zap.String("client", dbConfig.Client))

	// Init UseCase
	taskUseCase := task.NewTaskUseCase(taskGateway)
	healthUseCase := health.NewHealthUseCase(healthGateway)

	// Init Routes
	e := server.New(server.Options{
		ContextPath:   resource.GetString("app.server.context-path"),
		AllowedOrigin: resource.GetString("app.cors.allowed-origin"),
		TaskUseCase:   taskUseCase,
		HealthUseCase: healthUseCase,
	})

	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}

// openGateways opens the configured store, creates the tasks table and returns the gateways for the configured client.
func openGateways(ctx context.Context, cfg database.Config) (db.TaskGateway, db.HealthDBGateway, func(), error) {
	log.Info(msg.GetMessage("db.open", cfg.Driver, cfg.Client))

	switch cfg.Client {
	case database.ClientSQL:
		store, err := sqldb.Open(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqldb.InitSchema(ctx, store, cfg); err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		return db.NewSQLTaskGateway(store), db.NewSQLHealthDBGateway(store, cfg.Driver), func() { store.Close() }, nil

	case database.ClientGorm:
		store, err := gormdb.Open(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := store.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		if err := gormdb.InitSchema(ctx, store, cfg); err != nil {
			sqlDB.Close()
			return nil, nil, nil, err
		}
		return db.NewGormTaskGateway(store), db.NewGormHealthDBGateway(store, cfg.Driver), func() { sqlDB.Close() }, nil

	default:
		return nil, nil, nil, errors.New(msg.GetMessage("db.unknown-client", cfg.Client))
	}
}
