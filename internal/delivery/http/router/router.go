// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bikeshare/internal/delivery/http/middleware"
	"bikeshare/internal/delivery/http/router/handler"
	"bikeshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	SupportHandler      *handler.SupportHandler
	DashboardHandler    *handler.DashboardHandler
	ReservationHandler  *handler.ReservationHandler
	BikeHandler         *handler.BikeHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	supportHandler      *handler.SupportHandler
	dashboardHandler    *handler.DashboardHandler
	reservationHandler  *handler.ReservationHandler
	bikeHandler         *handler.BikeHandler
	reviewHandler       *handler.ReviewHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		supportHandler:      params.SupportHandler,
		dashboardHandler:    params.DashboardHandler,
		reservationHandler:  params.ReservationHandler,
		bikeHandler:         params.BikeHandler,
		reviewHandler:       params.ReviewHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes registers all the application routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Routes of any signed-in user
	meGroup := api.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		meGroup.PUT("/password", r.profileHandler.ChangePassword)
		meGroup.GET("/support/categories", r.supportHandler.ListCategories)
		meGroup.GET("/support/tickets", r.supportHandler.ListTickets)
		meGroup.POST("/support/tickets", r.supportHandler.CreateTicket)
	}

	ownerGroup := api.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleOwner))
	{
		ownerGroup.GET("/dashboard", r.dashboardHandler.OwnerDashboard)

		ownerGroup.GET("/reservations", r.reservationHandler.ListOwnerReservations)
		ownerGroup.POST("/reservations/:id/accept", r.reservationHandler.AcceptReservation)
		ownerGroup.POST("/reservations/:id/decline", r.reservationHandler.DeclineReservation)

		ownerGroup.GET("/bikes", r.bikeHandler.ListOwnerBikes)
		ownerGroup.POST("/bikes", r.bikeHandler.CreateBike)
		ownerGroup.PUT("/bikes/:id", r.bikeHandler.UpdateBike)
		ownerGroup.DELETE("/bikes/:id", r.bikeHandler.DeleteBike)

		ownerGroup.GET("/reviews", r.reviewHandler.ListReceived)

		ownerGroup.GET("/notifications", r.notificationHandler.GetFeed)
		ownerGroup.POST("/notifications/read", r.notificationHandler.MarkAllRead)
	}

	renterGroup := api.Group("/renter")
	renterGroup.Use(r.authMiddleware.Authenticate)
	renterGroup.Use(r.authMiddleware.RequireRole(entity.RoleRenter))
	{
		renterGroup.GET("/dashboard", r.dashboardHandler.RenterDashboard)
		renterGroup.GET("/map", r.bikeHandler.BrowseMap)

		renterGroup.POST("/reservations", r.reservationHandler.CreateReservation)
		renterGroup.POST("/reservations/:id/cancel", r.reservationHandler.CancelReservation)

		renterGroup.GET("/reviews", r.reviewHandler.ListWritten)
		renterGroup.GET("/reviews/pending", r.reviewHandler.ListReviewable)
		renterGroup.POST("/reviews", r.reviewHandler.CreateReview)
	}
}
