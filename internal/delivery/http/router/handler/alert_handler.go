package handler

import (
	"log/slog"
	"strings"
	"time"

	"alerty/internal/delivery/http/response"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/repository"
	"alerty/internal/domain/service"
	"alerty/internal/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// AlertHandler serves the alert endpoints.
type AlertHandler struct {
	alerts repository.AlertRepository
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(alerts repository.AlertRepository, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		alerts: alerts,
		logger: logger,
	}
}

// List returns a page of the caller's alerts, newest first.
func (h *AlertHandler) List(c echo.Context) error {
	q, err := h.query(c)
	if err != nil {
		return err
	}

	page, err := h.alerts.List(c.Request().Context(), q)
	if err != nil {
		return errors.Wrap(err, "failed to list alerts")
	}

	return response.OK(c, page)
}

// ListByRange returns a page of alerts received between from and to.
func (h *AlertHandler) ListByRange(c echo.Context) error {
	q, err := h.query(c)
	if err != nil {
		return err
	}

	if q.From, err = parseDate(c.QueryParam("from"), false); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("from: " + err.Error())
	}
	if q.To, err = parseDate(c.QueryParam("to"), true); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("to: " + err.Error())
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return domainerrors.ErrValidationFailed.WithDetails("to must not be before from")
	}

	page, err := h.alerts.List(c.Request().Context(), q)
	if err != nil {
		return errors.Wrap(err, "failed to list alerts by range")
	}

	return response.OK(c, page)
}

// Get returns a single alert.
func (h *AlertHandler) Get(c echo.Context) error {
	alert, err := h.find(c)
	if err != nil {
		return err
	}

	return response.OK(c, alert)
}

// Create stores a new alert for the caller's company.
func (h *AlertHandler) Create(c echo.Context) error {
	var input service.AlertInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	companyID, err := companyScope(c, input.CompanyID)
	if err != nil {
		return err
	}

	alert := alertFromInput(input)
	alert.CompanyID = companyID
	if err := h.alerts.Create(c.Request().Context(), alert); err != nil {
		return errors.Wrap(err, "failed to create alert")
	}

	h.logger.Info("Alert created",
		slog.Int64("alert_id", alert.ID),
		slog.String("severity", alert.Severity),
	)

	return response.Created(c, alert)
}

// Update replaces the writable fields of an alert.
func (h *AlertHandler) Update(c echo.Context) error {
	current, err := h.find(c)
	if err != nil {
		return err
	}

	var input service.AlertInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	alert := alertFromInput(input)
	alert.ID = current.ID
	alert.CompanyID = current.CompanyID
	if err := h.alerts.Update(c.Request().Context(), alert); err != nil {
		return h.mapError(err, "failed to update alert")
	}

	return response.OK(c, alert)
}

// Delete removes an alert.
func (h *AlertHandler) Delete(c echo.Context) error {
	alert, err := h.find(c)
	if err != nil {
		return err
	}

	if err := h.alerts.Delete(c.Request().Context(), alert.ID); err != nil {
		return h.mapError(err, "failed to delete alert")
	}

	return response.NoContent(c)
}

// Acknowledge marks an alert as acknowledged and returns it.
func (h *AlertHandler) Acknowledge(c echo.Context) error {
	requested, err := queryID(c, "companyId")
	if err != nil {
		return err
	}
	if _, err := companyScope(c, requested); err != nil {
		return err
	}

	alert, err := h.find(c)
	if err != nil {
		return err
	}
	if requested > 0 && alert.CompanyID != requested {
		return domainerrors.ErrAlertNotFound
	}

	acked, err := h.alerts.Acknowledge(c.Request().Context(), alert.ID)
	if err != nil {
		return h.mapError(err, "failed to acknowledge alert")
	}

	h.logger.Info("Alert acknowledged", slog.Int64("alert_id", acked.ID))

	return response.OK(c, acked)
}

// find loads the alert named by the id path parameter and checks the caller may see it.
func (h *AlertHandler) find(c echo.Context) (*entity.Alert, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}

	alert, err := h.alerts.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, h.mapError(err, "failed to find alert")
	}
	if _, err := companyScope(c, alert.CompanyID); err != nil {
		// Other companies' alerts do not exist for the caller.
		return nil, domainerrors.ErrAlertNotFound
	}

	return alert, nil
}

func (h *AlertHandler) query(c echo.Context) (repository.AlertQuery, error) {
	requested, err := queryID(c, "companyId")
	if err != nil {
		return repository.AlertQuery{}, err
	}

	companyID, err := companyScope(c, requested)
	if err != nil {
		return repository.AlertQuery{}, err
	}

	page, size := pageParams(c)

	return repository.AlertQuery{CompanyID: companyID, Page: page, Size: size}, nil
}

func (h *AlertHandler) mapError(err error, msg string) error {
	if errors.Is(err, repository.ErrAlertNotFound) {
		return domainerrors.ErrAlertNotFound
	}

	return errors.Wrap(err, msg)
}

func alertFromInput(input service.AlertInput) *entity.Alert {
	return &entity.Alert{
		Severity:         strings.ToUpper(strings.TrimSpace(input.Severity)),
		VehicleCode:      input.VehicleCode,
		LicensePlate:     input.LicensePlate,
		Plant:            input.Plant,
		Area:             input.Area,
		AlertType:        input.AlertType,
		ShortDescription: input.ShortDescription,
		Details:          input.Details,
		RawPayload:       input.RawPayload,
	}
}

// parseDate accepts an ISO date or date-time. A bare date used as an upper
// bound covers the whole day.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		if endOfDay {
			return t.Add(24*time.Hour - time.Nanosecond), nil
		}

		return t, nil
	}

	t, ok := entity.ParseTimestamp(raw)
	if !ok {
		return time.Time{}, errors.Errorf("invalid date %q", raw)
	}

	return t, nil
}
