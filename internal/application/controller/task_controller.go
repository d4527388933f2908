package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/task"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TaskController struct {
	api     *echo.Group
	useCase task.UseCase
	binder  echo.DefaultBinder
}

func NewTaskController(api *echo.Group, useCase task.UseCase) *TaskController {
	return &TaskController{api: api, useCase: useCase}
}

// InitTaskRoutes initializes task routes
func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks", controller.FindAll)
	controller.api.GET("/tasks/:id", controller.FindByID)
	controller.api.POST("/tasks", controller.Create)
	controller.api.PUT("/tasks/:id", controller.UpdateByID)
	controller.api.DELETE("/tasks/:id", controller.DeleteByID)
}

func detail(message string) map[string]string {
	return map[string]string{"detail": message}
}

func (controller *TaskController) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, detail(msg.GetMessage("task.not-found")))
}

// bindTask decodes the request body. A non-empty problem means the body is malformed.
func (controller *TaskController) bindTask(c echo.Context) (dto model.TaskDTO, problem string) {
	if err := controller.binder.BindBody(c, &dto); err != nil {
		return dto, msg.GetMessage("task.error.invalid-body")
	}
	if err := dto.Validate(); err != nil {
		return dto, msg.GetMessage("task.error.missing-task")
	}
	return dto, ""
}

func pathID(c echo.Context) (int64, bool) {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	return id, err == nil
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, detail(msg.GetMessage("task.error.invalid-id")))
}

// FindAll godoc
// @Summary List tasks
// @Description Return every stored task, unpaginated, in storage order
// @Tags tasks
// @Produce json
// @Success 200 {array} entity.Task
// @Router /tasks [get]
func (controller *TaskController) FindAll(c echo.Context) error {
	tasks, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// FindByID godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} entity.Task
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 422 {object} map[string]string "Invalid id"
// @Router /tasks/{id} [get]
func (controller *TaskController) FindByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return controller.notFound(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a task
// @Description is_complete defaults to 0 and due_date to null when omitted
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body model.TaskDTO true "Task"
// @Success 201 {object} entity.Task
// @Failure 422 {object} map[string]string "Malformed request"
// @Router /tasks [post]
func (controller *TaskController) Create(c echo.Context) error {
	dto, problem := controller.bindTask(c)
	if problem != "" {
		return c.JSON(http.StatusUnprocessableEntity, detail(problem))
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateByID godoc
// @Summary Replace a task
// @Description Overwrites task, is_complete and due_date; omitted fields take their defaults
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param task body model.TaskDTO true "Task"
// @Success 200 {object} entity.Task
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 422 {object} map[string]string "Malformed request"
// @Router /tasks/{id} [put]
func (controller *TaskController) UpdateByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	dto, problem := controller.bindTask(c)
	if problem != "" {
		return c.JSON(http.StatusUnprocessableEntity, detail(problem))
	}

	updated, err := controller.useCase.UpdateByID(c.Request().Context(), id, dto)
	if errors.Is(err, task.ErrTaskNotFound) {
		return controller.notFound(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByID godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} map[string]string "Task deleted successfully"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 422 {object} map[string]string "Invalid id"
// @Router /tasks/{id} [delete]
func (controller *TaskController) DeleteByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	err := controller.useCase.DeleteByID(c.Request().Context(), id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return controller.notFound(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("task.deleted")})
}
