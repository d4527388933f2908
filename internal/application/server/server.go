package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/task"
)

type Options struct {
	ContextPath   string
	AllowedOrigin string
	TaskUseCase   task.UseCase
	HealthUseCase health.UseCase
}

// New builds the echo instance with middlewares, swagger and every controller route.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupErrorHandler(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupCORS(e, opts.AllowedOrigin)

	api := e.Group(opts.ContextPath)

	if opts.ContextPath != "" {
		docs.SwaggerInfo.BasePath = opts.ContextPath
	}
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	controller.NewTaskController(api, opts.TaskUseCase).InitTaskRoutes()
	controller.NewHealthController(api, opts.HealthUseCase).InitHealthRoutes()

	return e
}
