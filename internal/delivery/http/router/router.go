// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"clinica/internal/delivery/http/middleware"
	"clinica/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PacienteHandler *handler.PacienteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pacienteHandler *handler.PacienteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pacienteHandler: params.PacienteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, open to anonymous callers
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Patient routes require an installed session
	pacienteGroup := e.Group("/pacientes")
	pacienteGroup.Use(r.authMiddleware.RequireSession)
	{
		pacienteGroup.GET("", r.pacienteHandler.List)
		pacienteGroup.POST("", r.pacienteHandler.Create)
		pacienteGroup.GET("/:id", r.pacienteHandler.Get)
		pacienteGroup.PUT("/:id", r.pacienteHandler.Update)
		pacienteGroup.POST("/eliminar/:id", r.pacienteHandler.Delete)
		pacienteGroup.GET("/buscar-eliminado/:dni", r.pacienteHandler.FindDeleted)
		pacienteGroup.PUT("/habilitar/:id", r.pacienteHandler.Restore)
	}

	// Insurance catalog, read-only but session-guarded like the pages using it
	catalogGroup := e.Group("/tiposseguro")
	catalogGroup.Use(r.authMiddleware.RequireSession)
	{
		catalogGroup.GET("", r.pacienteHandler.InsuranceTypes)
	}
}
