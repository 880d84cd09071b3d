package main

import (
	"log"
	"time"

	"github.com/VisionOra/support-agent-test-task/config"
	"github.com/VisionOra/support-agent-test-task/internal/bootstrap"
	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/VisionOra/support-agent-test-task/internal/support/llm"
	"github.com/VisionOra/support-agent-test-task/internal/support/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := knowledge.Load(cfg.App.KnowledgePath)
	if err != nil {
		log.Printf("[warn] knowledge base unavailable, serving with an empty store: %v", err)
	}

	var generator llm.Generator
	mode := "knowledge-base-only"
	if cfg.GenerationEnabled() {
		generator = llm.NewOpenAI(llm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: time.Duration(cfg.OpenAI.TimeoutSec) * time.Second,
		})
		mode = "generation"
	} else {
		log.Printf("[warn] OPENAI_API_KEY not set, running in knowledge-base-only mode")
	}

	agent := service.NewAgent(store, generator)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "support-agent",
		Version:     cfg.App.Version,
		Agent:       agent,
		Store:       store,
		Mode:        mode,
	})

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s (knowledge entries=%d mode=%s)", addr, store.Len(), mode)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
