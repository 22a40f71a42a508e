package service

import (
	"context"

	"alerty/internal/domain/entity"
)

// AlertListParams selects a page of alerts. The JSON form is part of the cache key.
type AlertListParams struct {
	CompanyID int64 `json:"companyId,omitempty"`
	Page      int   `json:"page"`
	Size      int   `json:"size"`
}

// AlertRangeParams selects a page of alerts received between From and To.
// Dates are sent as given (ISO-8601 date or date-time).
type AlertRangeParams struct {
	CompanyID int64  `json:"companyId,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Page      int    `json:"page"`
	Size      int    `json:"size"`
}

// AlertInput is the writable part of an alert.
type AlertInput struct {
	CompanyID        int64  `json:"companyId,omitempty"`
	Severity         string `json:"severity" validate:"required"`
	VehicleCode      string `json:"vehicleCode,omitempty"`
	LicensePlate     string `json:"licensePlate,omitempty"`
	Plant            string `json:"plant,omitempty"`
	Area             string `json:"area,omitempty"`
	AlertType        string `json:"alertType,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Details          string `json:"details,omitempty"`
	RawPayload       string `json:"rawPayload,omitempty"`
}

// AlertService reads and writes alerts on the backend.
type AlertService interface {
	GetAlert(ctx context.Context, id int64) (*entity.Alert, error)
	ListAlerts(ctx context.Context, params AlertListParams) (*entity.Page[entity.Alert], error)
	ListAlertsByRange(ctx context.Context, params AlertRangeParams) (*entity.Page[entity.Alert], error)
	CreateAlert(ctx context.Context, input AlertInput) (*entity.Alert, error)
	UpdateAlert(ctx context.Context, id int64, input AlertInput) (*entity.Alert, error)
	DeleteAlert(ctx context.Context, id int64) error

	// AcknowledgeAlert marks an alert as acknowledged. companyID is optional (0 omits it).
	AcknowledgeAlert(ctx context.Context, companyID, id int64) (*entity.Alert, error)
}
