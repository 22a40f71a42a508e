package api

import (
	"context"
	"net/http"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

// deviceRegistration is the validated body of a registration.
type deviceRegistration struct {
	UserID        int64  `json:"userId" validate:"gt=0"`
	ExpoPushToken string `json:"expoPushToken" validate:"required"`
	Platform      string `json:"platform" validate:"required,oneof=android ios"`
	Active        bool   `json:"active"`
}

type deviceService struct {
	requester service.Requester
	validate  *validator.Validate
}

// NewDeviceService creates the device resource service.
func NewDeviceService(params Params) service.DeviceService {
	return &deviceService{
		requester: params.Requester,
		validate:  validatorOrDefault(params.Validate),
	}
}

// RegisterDevice posts the push registration. The answer body is ignored.
func (s *deviceService) RegisterDevice(ctx context.Context, device entity.DeviceRegistration) error {
	body := deviceRegistration(device)
	if err := validateRequest(s.validate, body); err != nil {
		return err
	}

	return s.requester.Do(ctx, service.Request{Method: http.MethodPost, Path: "/api/devices/register", Body: body}, nil)
}
