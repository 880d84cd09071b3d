package http

import (
	"net/http"
	"time"

	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Knowledge string    `json:"knowledge,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	store       *knowledge.Store
}

func NewHealthHandler(serviceName, version string, store *knowledge.Store) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	knowledgeStatus := "disabled"
	if h.store != nil {
		if h.store.Len() > 0 {
			knowledgeStatus = "loaded"
		} else {
			knowledgeStatus = "empty"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Knowledge: knowledgeStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
