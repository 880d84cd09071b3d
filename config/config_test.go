package config_test

import (
	"testing"

	"github.com/VisionOra/support-agent-test-task/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("KNOWLEDGE_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 30, cfg.OpenAI.TimeoutSec)
	assert.Equal(t, "data/knowledge.json", cfg.App.KnowledgePath)
	assert.False(t, cfg.GenerationEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT_SEC", "5")
	t.Setenv("KNOWLEDGE_PATH", "/tmp/kb.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 5, cfg.OpenAI.TimeoutSec)
	assert.Equal(t, "/tmp/kb.json", cfg.App.KnowledgePath)
	assert.True(t, cfg.GenerationEnabled())
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("OPENAI_TIMEOUT_SEC", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.OpenAI.TimeoutSec)
}
