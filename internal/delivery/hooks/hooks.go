// Package hooks exposes the typed queries and mutations the front-end calls.
// Each hook pairs a resource service with its cache key and, for writes, the
// invalidations that keep the cache coherent.
package hooks

import (
	"log/slog"

	"alerty/config"
	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"
	"alerty/internal/query"

	"go.uber.org/fx"
)

// Hooks is the entry point of the front-end into the backend.
type Hooks struct {
	query   *query.Client
	auth    service.AuthService
	alerts  service.AlertService
	users   service.UserService
	devices service.DeviceService
	cfg     *config.QueryConfig
	logger  *slog.Logger

	ack *query.Mutation[*entity.Alert, *entity.Alert]
}

// Params holds dependencies for the hooks, injected by Fx
type Params struct {
	fx.In

	Query   *query.Client
	Auth    service.AuthService
	Alerts  service.AlertService
	Users   service.UserService
	Devices service.DeviceService
	Config  *config.Config
	Logger  *slog.Logger
}

// New creates the hooks.
func New(params Params) *Hooks {
	h := &Hooks{
		query:   params.Query,
		auth:    params.Auth,
		alerts:  params.Alerts,
		users:   params.Users,
		devices: params.Devices,
		cfg:     params.Config.Query,
		logger:  params.Logger,
	}
	h.ack = h.newAcknowledgeMutation()

	return h
}

// ClearCache drops every cached value, used on logout.
func (h *Hooks) ClearCache() {
	h.query.Clear()
}

func (h *Hooks) pageSize(size int) int {
	if size > 0 {
		return size
	}

	return h.cfg.PageSize
}

// Module provides the hooks FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
