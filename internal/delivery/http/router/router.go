// Package router registers the JSON API routes.
package router

import (
	"plantcare/internal/delivery/http/middleware"
	"plantcare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PlantHandler        *handler.PlantHandler
	TaskHandler         *handler.TaskHandler
	BadgeHandler        *handler.BadgeHandler
	NotificationHandler *handler.NotificationHandler
	AnalysisHandler     *handler.AnalysisHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	api := e.Group("/api")
	api.Use(r.params.AuthMiddleware.Authenticate)

	api.GET("/user", r.params.UserHandler.GetProfile)
	api.GET("/user/badges", r.params.BadgeHandler.ListUserBadges)
	api.GET("/badges", r.params.BadgeHandler.ListBadges)

	plants := api.Group("/plants")
	{
		plants.GET("", r.params.PlantHandler.ListPlants)
		plants.POST("", r.params.PlantHandler.CreatePlant)
		plants.GET("/:id", r.params.PlantHandler.GetPlant)
		plants.PATCH("/:id", r.params.PlantHandler.UpdatePlant)
		plants.DELETE("/:id", r.params.PlantHandler.DeletePlant)
		plants.GET("/:id/qrcode", r.params.PlantHandler.GetPlantQRCode)
		plants.GET("/:id/tasks", r.params.PlantHandler.ListPlantTasks)
		plants.GET("/:id/analysis", r.params.AnalysisHandler.ListAnalyses)
		plants.POST("/:id/analysis", r.params.AnalysisHandler.RecordAnalysis)
		plants.GET("/:id/analysis/latest", r.params.AnalysisHandler.GetLatestAnalysis)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", r.params.TaskHandler.ListTasks)
		tasks.POST("", r.params.TaskHandler.CreateTask)
		tasks.PATCH("/:id", r.params.TaskHandler.UpdateTask)
		tasks.DELETE("/:id", r.params.TaskHandler.DeleteTask)
		tasks.POST("/:id/complete", r.params.TaskHandler.CompleteTask)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", r.params.NotificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", r.params.NotificationHandler.MarkAsRead)
	}
}
