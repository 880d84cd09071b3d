package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
	"github.com/VisionOra/support-agent-test-task/internal/support/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Hello from the model."}}]}`))
	}))
	defer server.Close()

	client := llm.NewOpenAI(llm.Config{APIKey: "test-key", BaseURL: server.URL})

	got, err := client.Generate(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "Hello from the model.", got)

	assert.Equal(t, "gpt-3.5-turbo", captured["model"])
	assert.Equal(t, 0.7, captured["temperature"])
	assert.Equal(t, float64(200), captured["max_tokens"])

	msgs, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	second := msgs[1].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system text", first["content"])
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "user text", second["content"])
}

func TestGenerate_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := llm.NewOpenAI(llm.Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Generate(context.Background(), "s", "u")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "status 429")
}

func TestGenerate_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := llm.NewOpenAI(llm.Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Generate(context.Background(), "s", "u")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "decode", genErr.Op)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := llm.NewOpenAI(llm.Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.Generate(context.Background(), "s", "u")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestGenerate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"too late"}}]}`))
	}))
	defer server.Close()

	client := llm.NewOpenAI(llm.Config{APIKey: "k", BaseURL: server.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	var genErr *domain.GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestGenerate_Unreachable(t *testing.T) {
	client := llm.NewOpenAI(llm.Config{APIKey: "k", BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := client.Generate(context.Background(), "s", "u")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "call", genErr.Op)
}
