package handler

import (
	"net/http"

	"plantcare/internal/delivery/http/response"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TaskHandler serves care tasks across all of the user's plants.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateTaskInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// UpdateTask edits task fields. Setting completed=true completes the task.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, taskID, err := h.ids(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateTaskInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.UpdateTask(c.Request().Context(), userID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task updated successfully")
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, taskID, err := h.ids(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}

// CompleteTask marks the task done and returns the points and badges it earned.
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	userID, taskID, err := h.ids(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CompleteTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task completed")
}

func (h *TaskHandler) ids(c echo.Context) (uint64, uint64, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return 0, 0, err
	}

	taskID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	return userID, taskID, nil
}
