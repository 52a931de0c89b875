// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storepulse/internal/delivery/http/middleware"
	"storepulse/internal/delivery/http/router/handler"
	"storepulse/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	OwnerHandler   *handler.OwnerHandler
	StoreHandler   *handler.StoreHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	ownerHandler   *handler.OwnerHandler
	storeHandler   *handler.StoreHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		ownerHandler:   params.OwnerHandler,
		storeHandler:   params.StoreHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Admin routes require authentication and the SYSTEM_ADMIN role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleSystemAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.AddUser)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
		adminGroup.POST("/stores", r.adminHandler.AddStore)
	}

	// Owner routes require authentication and the STORE_OWNER role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRoles(entity.RoleStoreOwner))
	{
		ownerGroup.GET("/mystore", r.ownerHandler.MyStore)
		ownerGroup.GET("/myratings", r.ownerHandler.MyRatings)
		ownerGroup.GET("/dashboard", r.ownerHandler.Dashboard)
	}

	// Normal-user routes
	userOnly := r.authMiddleware.RequireRoles(entity.RoleNormalUser)
	e.GET("/stores", r.storeHandler.BrowseStores, r.authMiddleware.Authenticate, userOnly)
	e.POST("/submitrating", r.storeHandler.SubmitRating, r.authMiddleware.Authenticate, userOnly)
	e.GET("/myrating", r.storeHandler.MyRatings, r.authMiddleware.Authenticate, userOnly)

	// Any authenticated user can change their own password
	anyRole := r.authMiddleware.RequireRoles(entity.RoleSystemAdmin, entity.RoleStoreOwner, entity.RoleNormalUser)
	e.PUT("/changepassword", r.authHandler.ChangePassword, r.authMiddleware.Authenticate, anyRole)
}
