package handler

import (
	"log/slog"

	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/delivery/http/response"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/repository"
	"alerty/internal/errors"

	"github.com/labstack/echo/v4"
)

// registerDeviceRequest is the body of POST /api/devices/register.
type registerDeviceRequest struct {
	UserID        int64  `json:"userId" validate:"required,gt=0"`
	ExpoPushToken string `json:"expoPushToken" validate:"required"`
	Platform      string `json:"platform" validate:"required,oneof=android ios"`
	Active        bool   `json:"active"`
}

// DeviceHandler serves push device registration.
type DeviceHandler struct {
	devices repository.DeviceRepository
	logger  *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(devices repository.DeviceRepository, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		devices: devices,
		logger:  logger,
	}
}

// Register upserts the caller's push token.
func (h *DeviceHandler) Register(c echo.Context) error {
	var input registerDeviceRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrNoSession
	}
	if claims.UserID != input.UserID && claims.Role != entity.RoleAdmin.String() {
		return domainerrors.ErrForbidden.WithDetails("cannot register a device for another user")
	}

	device := &entity.DeviceRegistration{
		UserID:        input.UserID,
		ExpoPushToken: input.ExpoPushToken,
		Platform:      input.Platform,
		Active:        input.Active,
	}
	if err := h.devices.Register(c.Request().Context(), device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	h.logger.Info("Device registered",
		slog.Int64("user_id", device.UserID),
		slog.String("platform", device.Platform),
	)

	return response.NoContent(c)
}
