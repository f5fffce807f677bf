// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitbot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlanHandler     *handler.PlanHandler
	ExerciseHandler *handler.ExerciseHandler
	HealthHandler   *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	planHandler     *handler.PlanHandler
	exerciseHandler *handler.ExerciseHandler
	healthHandler   *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		planHandler:     params.PlanHandler,
		exerciseHandler: params.ExerciseHandler,
		healthHandler:   params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.POST("/plans", r.planHandler.GeneratePlan)
		apiV1.POST("/calories", r.planHandler.CalculateCalories)
		apiV1.POST("/chat", r.planHandler.Chat)
		apiV1.GET("/exercises/search", r.exerciseHandler.SearchExercises)
	}
}
