package hooks

import (
	"context"
	"log/slog"

	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/query"
)

// Alert reads a single alert. Ids below 1 disable the query.
func (h *Hooks) Alert(ctx context.Context, id int64) (query.Result[*entity.Alert], error) {
	return query.Fetch(ctx, h.query, AlertKey(id),
		func(ctx context.Context) (*entity.Alert, error) {
			return h.alerts.GetAlert(ctx, id)
		},
		query.Enabled(id > 0),
	)
}

// Alerts reads a page of the alert history and keeps showing the previous
// page while a new one cannot be loaded.
func (h *Hooks) Alerts(ctx context.Context, params service.AlertListParams) (query.Result[*entity.Page[entity.Alert]], error) {
	params.Size = h.pageSize(params.Size)

	return query.Fetch(ctx, h.query, AlertsKey(params),
		func(ctx context.Context) (*entity.Page[entity.Alert], error) {
			return h.alerts.ListAlerts(ctx, params)
		},
		query.KeepPreviousData(),
	)
}

// WatchAlerts polls a page of the alert history until ctx is done.
func (h *Hooks) WatchAlerts(ctx context.Context, params service.AlertListParams, onUpdate func(query.Result[*entity.Page[entity.Alert]], error)) error {
	params.Size = h.pageSize(params.Size)

	return query.Poll(ctx, h.query, AlertsKey(params),
		func(ctx context.Context) (*entity.Page[entity.Alert], error) {
			return h.alerts.ListAlerts(ctx, params)
		},
		h.cfg.UserPollInterval,
		onUpdate,
		query.KeepPreviousData(),
	)
}

// AlertsByRange reads a page of alerts received between params.From and params.To.
func (h *Hooks) AlertsByRange(ctx context.Context, params service.AlertRangeParams) (query.Result[*entity.Page[entity.Alert]], error) {
	params.Size = h.pageSize(params.Size)

	return query.Fetch(ctx, h.query, AlertsByRangeKey(params),
		func(ctx context.Context) (*entity.Page[entity.Alert], error) {
			return h.alerts.ListAlertsByRange(ctx, params)
		},
		query.Enabled(params.From != "" && params.To != ""),
		query.KeepPreviousData(),
	)
}

// CreateAlert creates an alert and refreshes every alert list.
func (h *Hooks) CreateAlert(ctx context.Context, input service.AlertInput) (*entity.Alert, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*entity.Alert, error) {
			return h.alerts.CreateAlert(ctx, input)
		},
		func(*entity.Alert) {
			h.query.Invalidate(allAlertsPrefix)
		},
	)
}

// UpdateAlert updates an alert and refreshes it and every alert list.
func (h *Hooks) UpdateAlert(ctx context.Context, id int64, input service.AlertInput) (*entity.Alert, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*entity.Alert, error) {
			return h.alerts.UpdateAlert(ctx, id, input)
		},
		func(*entity.Alert) {
			h.query.Invalidate(AlertKey(id))
			h.query.Invalidate(allAlertsPrefix)
		},
	)
}

// DeleteAlert deletes an alert and refreshes it and every alert list.
func (h *Hooks) DeleteAlert(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.alerts.DeleteAlert(ctx, id)
		},
		func(struct{}) {
			h.query.Invalidate(AlertKey(id))
			h.query.Invalidate(allAlertsPrefix)
		},
	)

	return err
}

// AcknowledgeAlert marks alert as acknowledged. An alert that already is
// acknowledged is returned unchanged without calling the backend. When the
// backend answers without the alert, a copy of alert flagged as acknowledged
// is returned.
func (h *Hooks) AcknowledgeAlert(ctx context.Context, alert *entity.Alert) (*entity.Alert, error) {
	if alert == nil {
		return nil, domainerrors.ErrAlertNotFound
	}
	if alert.Acknowledged {
		return alert, nil
	}

	updated, err := h.ack.Run(ctx, alert)
	if err != nil {
		return nil, err
	}
	if !sameAlert(alert, updated) {
		acked := *alert
		acked.Acknowledged = true

		return &acked, nil
	}

	return updated, nil
}

// AcknowledgePending reports whether an acknowledge is in flight.
func (h *Hooks) AcknowledgePending() bool {
	return h.ack.Pending()
}

func (h *Hooks) newAcknowledgeMutation() *query.Mutation[*entity.Alert, *entity.Alert] {
	return query.NewMutation(
		func(ctx context.Context, alert *entity.Alert) (*entity.Alert, error) {
			return h.alerts.AcknowledgeAlert(ctx, alert.CompanyID, alert.ID)
		},
		// The updated alert is written to its key before the alert lists are refreshed.
		func(_ context.Context, alert *entity.Alert, updated *entity.Alert) {
			h.logger.Debug("Alert acknowledged", slog.Int64("alert_id", alert.ID))

			key := AlertKey(alert.ID)
			if sameAlert(alert, updated) {
				query.SetData(h.query, key, updated)
			}
			h.query.Invalidate(key)
			h.query.Invalidate(allAlertsPrefix)
			h.query.Invalidate(groupedAlertsPrefix)
		},
	)
}

// sameAlert reports whether updated is the backend's copy of alert.
func sameAlert(alert, updated *entity.Alert) bool {
	return updated != nil && updated.ID == alert.ID
}
