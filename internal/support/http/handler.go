package http

import (
	"net/http"

	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/VisionOra/support-agent-test-task/internal/support/service"
	"github.com/gin-gonic/gin"
)

// Handler exposes the support agent to the chat UI.
type Handler struct {
	agent *service.Agent
	store *knowledge.Store
	mode  string
}

// New builds the handler. mode is "generation" or "knowledge-base-only" and is
// surfaced on the stats endpoint.
func New(agent *service.Agent, store *knowledge.Store, mode string) *Handler {
	return &Handler{agent: agent, store: store, mode: mode}
}

type chatReq struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// Empty messages flow through: the agent answers them with its validation
	// result rather than an HTTP error.
	res := h.agent.GetResponse(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"answer":     res.Answer,
		"source":     res.Source,
		"confidence": res.Confidence,
	})
}

func (h *Handler) knowledgeStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"entries": h.store.Len(),
		"mode":    h.mode,
	})
}

// Register mounts the support routes on the given group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/chat", h.chat)
	r.GET("/knowledge/stats", h.knowledgeStats)
}
