// Package handler contains the HTTP handlers for the JSON API.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/delivery/http/response"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/errors"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the id stored by the auth middleware.
func currentUserID(c echo.Context) (uint64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + ": " + raw)
	}

	return id, nil
}

// bindBody decodes and validates a JSON body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(dst))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
