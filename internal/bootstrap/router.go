package bootstrap

import (
	httpapi "github.com/VisionOra/support-agent-test-task/internal/api/http"
	"github.com/VisionOra/support-agent-test-task/internal/api/http/middleware"
	supporthttp "github.com/VisionOra/support-agent-test-task/internal/support/http"
	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/VisionOra/support-agent-test-task/internal/support/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Agent       *service.Agent
	Store       *knowledge.Store
	Mode        string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	supportGroup := api.Group("/support")
	supporthttp.New(dep.Agent, dep.Store, dep.Mode).Register(supportGroup)

	return r
}
