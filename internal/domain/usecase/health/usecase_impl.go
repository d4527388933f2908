package health

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type healthUseCase struct {
	dbGateway db.HealthDBGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway) UseCase {
	return &healthUseCase{
		dbGateway: dbGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
		log.Warn(msg.GetMessage("db.health-down"), zap.Any("details", dbHealth.Details))
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
	}
}
