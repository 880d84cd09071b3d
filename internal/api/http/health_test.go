package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/VisionOra/support-agent-test-task/internal/api/http"
	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := knowledge.NewStore([]domain.QAEntry{{Question: "q", Answer: "a"}})
	router := gin.New()
	handler := httpapi.NewHealthHandler("support-agent", "1.0.0", store)
	handler.RegisterRoutes(router)

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	var response httpapi.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %s", response.Status)
	}

	if response.Service != "support-agent" {
		t.Errorf("expected service 'support-agent', got %s", response.Service)
	}

	if response.Knowledge != "loaded" {
		t.Errorf("expected knowledge 'loaded', got %s", response.Knowledge)
	}
}

func TestHealthCheck_EmptyStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := httpapi.NewHealthHandler("support-agent", "1.0.0", knowledge.NewStore(nil))
	handler.RegisterRoutes(router)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response httpapi.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if response.Knowledge != "empty" {
		t.Errorf("expected knowledge 'empty', got %s", response.Knowledge)
	}
}
