package handler

import (
	"net/http"

	"plantcare/internal/delivery/http/response"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

const pngContentType = "image/png"

// PlantHandler serves the plant collection of the authenticated user.
type PlantHandler struct {
	plantUC usecase.PlantUsecase
	taskUC  usecase.TaskUsecase
}

func NewPlantHandler(plantUC usecase.PlantUsecase, taskUC usecase.TaskUsecase) *PlantHandler {
	return &PlantHandler{
		plantUC: plantUC,
		taskUC:  taskUC,
	}
}

// CreatePlant adds a plant and reports any badge earned by it.
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreatePlantInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.plantUC.CreatePlant(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Plant created successfully")
}

func (h *PlantHandler) ListPlants(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	plants, err := h.plantUC.ListPlants(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plants, "")
}

func (h *PlantHandler) GetPlant(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	plant, err := h.plantUC.GetPlant(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "")
}

func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdatePlantInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	plant, err := h.plantUC.UpdatePlant(c.Request().Context(), userID, plantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "Plant updated successfully")
}

// DeletePlant removes the plant together with its tasks.
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	if err := h.plantUC.DeletePlant(c.Request().Context(), userID, plantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plant deleted successfully")
}

// GetPlantQRCode returns the pot label as a PNG image.
func (h *PlantHandler) GetPlantQRCode(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	png, err := h.plantUC.GetPlantQRCode(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, pngContentType, png)
}

func (h *PlantHandler) ListPlantTasks(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskUC.ListPlantTasks(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

func (h *PlantHandler) ids(c echo.Context) (uint64, uint64, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return 0, 0, err
	}

	plantID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	return userID, plantID, nil
}
