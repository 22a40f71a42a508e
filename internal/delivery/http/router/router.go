// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alerty/internal/delivery/http/middleware"
	"alerty/internal/delivery/http/router/handler"
	"alerty/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AlertHandler   *handler.AlertHandler
	UserHandler    *handler.UserHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	alertHandler   *handler.AlertHandler
	userHandler    *handler.UserHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		alertHandler:   params.AlertHandler,
		userHandler:    params.UserHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/login", r.authHandler.Login)
	e.POST("/auth/login-dni", r.authHandler.LoginWithDni)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	alertGroup := api.Group("/alerts")
	{
		alertGroup.GET("", r.alertHandler.List)
		alertGroup.GET("/range", r.alertHandler.ListByRange)
		alertGroup.GET("/:id", r.alertHandler.Get)
		alertGroup.POST("", r.alertHandler.Create)
		alertGroup.PUT("/:id", r.alertHandler.Update)
		alertGroup.DELETE("/:id", r.alertHandler.Delete)
		alertGroup.PATCH("/:id/acknowledge", r.alertHandler.Acknowledge)
	}

	// Company user management; writes are for admins only
	companyUsers := api.Group("/companies/:companyId/users")
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin.String())
	{
		companyUsers.GET("", r.userHandler.Search)
		companyUsers.GET("/:userId", r.userHandler.GetInCompany)
		companyUsers.POST("", r.userHandler.Create, adminOnly)
		companyUsers.PUT("/:userId", r.userHandler.Update, adminOnly)
		companyUsers.DELETE("/:userId", r.userHandler.Delete, adminOnly)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("/by-username/:username", r.userHandler.GetByUsername)
		userGroup.GET("/:id", r.userHandler.Get)
	}

	api.POST("/devices/register", r.deviceHandler.Register)
}
