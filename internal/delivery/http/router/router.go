// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keygate/internal/delivery/http/middleware"
	"keygate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	LicenseHandler *handler.LicenseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	licenseHandler *handler.LicenseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		licenseHandler: params.LicenseHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// License validation accepts a key in the request body, no session needed
	e.POST("/license/validate", r.licenseHandler.Validate)

	// Routes that require an authenticated principal
	licenseGroup := e.Group("/license")
	licenseGroup.Use(r.authMiddleware.Authenticate)
	{
		licenseGroup.POST("/activate", r.licenseHandler.Activate)
		licenseGroup.DELETE("", r.licenseHandler.Revoke)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.authHandler.Me)
	}
}
