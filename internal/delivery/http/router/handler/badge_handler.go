package handler

import (
	"net/http"

	"plantcare/internal/delivery/http/response"
	"plantcare/internal/errors"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BadgeHandler struct {
	uc usecase.GamificationUsecase
}

func NewBadgeHandler(uc usecase.GamificationUsecase) *BadgeHandler {
	return &BadgeHandler{uc: uc}
}

// ListBadges returns the whole catalog.
func (h *BadgeHandler) ListBadges(c echo.Context) error {
	badges, err := h.uc.ListBadges(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "")
}

// ListUserBadges returns the badges the caller has earned with their earn time.
func (h *BadgeHandler) ListUserBadges(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	badges, err := h.uc.ListUserBadges(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "")
}
