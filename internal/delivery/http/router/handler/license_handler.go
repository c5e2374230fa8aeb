package handler

import (
	"log/slog"
	"net/http"

	"keygate/internal/delivery/http/middleware"
	"keygate/internal/delivery/http/response"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LicenseHandler holds dependencies for license lifecycle handlers.
type LicenseHandler struct {
	uc     usecase.LicenseUsecase
	logger *slog.Logger
}

// NewLicenseHandler is the constructor for LicenseHandler, injected by Fx.
func NewLicenseHandler(uc usecase.LicenseUsecase, logger *slog.Logger) *LicenseHandler {
	return &LicenseHandler{
		uc:     uc,
		logger: logger,
	}
}

// Activate creates a billing subscription for the caller and issues a license key.
func (h *LicenseHandler) Activate(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid principal in context")
	}

	var input *usecase.ActivateLicenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	input.UserID = userID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Activate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "License activated successfully")
}

// Validate checks a license key offline or online depending on the mode query parameter.
func (h *LicenseHandler) Validate(c echo.Context) error {
	var input *usecase.ValidateLicenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid validation input")
	}
	input.Online = c.QueryParam("mode") == "online"
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Validate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "License validation completed")
}

// Revoke clears the caller's stored license.
func (h *LicenseHandler) Revoke(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid principal in context")
	}

	if err := h.uc.Revoke(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "License revoked"}, "License revoked successfully")
}
