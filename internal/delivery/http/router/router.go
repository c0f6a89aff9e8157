// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"istiqdam/internal/delivery/http/middleware"
	"istiqdam/internal/delivery/http/router/handler"
	"istiqdam/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	OfficeHandler      *handler.OfficeHandler
	WorkerHandler      *handler.WorkerHandler
	ReservationHandler *handler.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	officeHandler      *handler.OfficeHandler
	workerHandler      *handler.WorkerHandler
	reservationHandler *handler.ReservationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		officeHandler:      params.OfficeHandler,
		workerHandler:      params.WorkerHandler,
		reservationHandler: params.ReservationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public directory and catalog search, no authentication required
	e.GET("/offices", r.officeHandler.ListOffices)
	e.GET("/offices/:id", r.officeHandler.GetOffice)
	e.GET("/offices/:id/workers", r.officeHandler.ListOfficeWorkers)
	e.GET("/workers", r.workerHandler.SearchWorkers)
	e.GET("/workers/:id", r.workerHandler.GetWorker)

	// Office-side catalog management and request handling
	officeGroup := e.Group("/office")
	officeGroup.Use(r.authMiddleware.Authenticate)
	officeGroup.Use(r.authMiddleware.RequireRole(entity.RoleOffice))
	{
		officeGroup.GET("/workers", r.workerHandler.ListMyWorkers)
		officeGroup.POST("/workers", r.workerHandler.CreateWorker)
		officeGroup.PUT("/workers/:id", r.workerHandler.UpdateWorker)
		officeGroup.DELETE("/workers/:id", r.workerHandler.DeleteWorker)
		officeGroup.POST("/workers/import", r.workerHandler.ImportWorkers)

		officeGroup.GET("/requests", r.reservationHandler.ListOfficeRequests)
		officeGroup.POST("/requests/:id/approve", r.reservationHandler.ApproveRequest)
		officeGroup.POST("/requests/:id/reject", r.reservationHandler.RejectRequest)
		officeGroup.GET("/statistics", r.reservationHandler.GetStatistics)
	}

	// Customer-side reservation requests
	requestGroup := e.Group("/requests")
	requestGroup.Use(r.authMiddleware.Authenticate)
	requestGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		requestGroup.POST("", r.reservationHandler.CreateRequest)
		requestGroup.GET("", r.reservationHandler.ListMyRequests)
		requestGroup.POST("/:id/cancel", r.reservationHandler.CancelRequest)
	}
}
