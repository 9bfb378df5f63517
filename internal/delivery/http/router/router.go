// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ulaz/internal/delivery/http/middleware"
	"ulaz/internal/delivery/http/router/handler"
	"ulaz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	PurchaseHandler   *handler.PurchaseHandler
	ReviewHandler     *handler.ReviewHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	purchaseHandler   *handler.PurchaseHandler
	reviewHandler     *handler.ReviewHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		purchaseHandler:   params.PurchaseHandler,
		reviewHandler:     params.ReviewHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.GET("/session", r.sessionHandler.Current)
	}

	// Catalog routes, readable by anyone
	e.GET("/events", r.catalogHandler.ListEvents)
	e.GET("/events/:id", r.catalogHandler.GetEvent)
	e.GET("/events/:id/comments", r.reviewHandler.EventComments)
	e.GET("/locations", r.catalogHandler.ListLocations)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/employees", r.catalogHandler.ListEmployees)

	// Purchase routes. Select and state stay open so an anonymous visitor
	// can start the flow; the session check happens at confirm.
	purchaseGroup := e.Group("/purchase")
	{
		purchaseGroup.POST("/select", r.purchaseHandler.Select)
		purchaseGroup.POST("/confirm", r.purchaseHandler.Confirm)
		purchaseGroup.POST("/dismiss", r.purchaseHandler.Dismiss)
		purchaseGroup.GET("/state", r.purchaseHandler.State)
	}

	// Routes that require a live session
	ticketGroup := e.Group("/tickets")
	ticketGroup.Use(r.sessionMiddleware.RequireSession)
	{
		ticketGroup.GET("", r.purchaseHandler.ListTickets)
		ticketGroup.GET("/:number/pass", r.purchaseHandler.Pass)
	}

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.sessionMiddleware.RequireSession)
	{
		reviewGroup.GET("/attendance", r.reviewHandler.Attendance)
		reviewGroup.POST("/comments", r.reviewHandler.SubmitComment)
	}

	// Admin routes require a live session and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.RequireSession)
	adminGroup.Use(r.sessionMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/events", r.adminHandler.CreateEvent)
		adminGroup.PUT("/events/:id", r.adminHandler.UpdateEvent)
		adminGroup.DELETE("/events/:id", r.adminHandler.DeleteEvent)
		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.adminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)
		adminGroup.POST("/employees", r.adminHandler.CreateEmployee)
		adminGroup.PUT("/employees/:id", r.adminHandler.UpdateEmployee)
		adminGroup.DELETE("/employees/:id", r.adminHandler.DeleteEmployee)
		adminGroup.POST("/tickets/:id/cancel", r.adminHandler.CancelTicket)
		adminGroup.DELETE("/comments/:id", r.adminHandler.DeleteComment)
	}
}
