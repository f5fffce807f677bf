package handler

import (
	"net/http"

	"fitbot/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and knowledge base readiness
type HealthHandler struct {
	index service.VectorIndex
}

// HealthResponse is the body returned by the health endpoint
type HealthResponse struct {
	Status             string `json:"status"`
	KnowledgeBaseReady bool   `json:"knowledge_base_ready"`
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(index service.VectorIndex) *HealthHandler {
	return &HealthHandler{index: index}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		KnowledgeBaseReady: h.index.Ready(),
	})
}
