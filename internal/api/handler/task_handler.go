package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// TaskHandler manages follow-up tasks attached to contractors.
type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskRequest struct {
	Title string     `json:"title" validate:"required"`
	Note  string     `json:"note"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

// Create handles POST /v1/contractors/:id/tasks.
//
// @Summary      Create a follow-up task for a contractor
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Contractor id"
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  domain.ContractorTask
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/contractors/{id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), c.Param("id"), ports.TaskInput{
		Title: req.Title,
		Note:  req.Note,
		DueAt: req.DueAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// List handles GET /v1/contractors/:id/tasks.
//
// @Summary      List a contractor's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contractor id"
// @Success      200  {array}   domain.ContractorTask
// @Failure      404  {object}  map[string]string
// @Router       /v1/contractors/{id}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.tasks.ListTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Complete handles POST /v1/tasks/:id/complete. Completing an already-done
// task is a no-op.
//
// @Summary      Mark a task done
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.ContractorTask
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c echo.Context) error {
	task, err := h.tasks.CompleteTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.tasks.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
