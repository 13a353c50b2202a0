package handler

import (
	"net/http"

	"plantcare/internal/delivery/http/response"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler ingests and lists health analyses of a plant.
type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// RecordAnalysis stores an analysis and applies everything derived from it:
// refreshed plant metrics, generated tasks, issue notifications and points.
func (h *AnalysisHandler) RecordAnalysis(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	input := new(usecase.RecordAnalysisInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.RecordAnalysis(c.Request().Context(), userID, plantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Analysis recorded")
}

func (h *AnalysisHandler) ListAnalyses(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	analyses, err := h.uc.ListAnalyses(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analyses, "")
}

func (h *AnalysisHandler) GetLatestAnalysis(c echo.Context) error {
	userID, plantID, err := h.ids(c)
	if err != nil {
		return err
	}

	analysis, err := h.uc.GetLatestAnalysis(c.Request().Context(), userID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysis, "")
}

func (h *AnalysisHandler) ids(c echo.Context) (uint64, uint64, error) {
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
