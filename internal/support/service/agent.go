package service

import (
	"context"
	"strings"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/VisionOra/support-agent-test-task/internal/support/llm"
	"github.com/VisionOra/support-agent-test-task/internal/support/match"
)

// MsgEmptyQuestion is returned for empty or whitespace-only input.
const MsgEmptyQuestion = "Please ask me a question about Thoughtful AI's agents!"

// Agent is the single entry point the UI layer talks to. It holds no mutable
// state between calls: the store is read-only after load and the generator is
// safe for concurrent use, so GetResponse can run in parallel.
type Agent struct {
	retriever *match.Retriever
	composer  *Composer
}

// NewAgent builds the agent over a loaded store. A nil generator puts the agent
// in knowledge-base-only mode.
func NewAgent(store *knowledge.Store, generator llm.Generator) *Agent {
	retriever := match.NewRetriever(store.Entries())
	return &Agent{
		retriever: retriever,
		composer:  NewComposer(retriever, generator),
	}
}

// GetResponse answers one question. Every path terminates in a well-formed
// result; no error from the retrieval or generation layers reaches the caller.
func (a *Agent) GetResponse(ctx context.Context, question string) domain.ResponseResult {
	recordAgentCall()

	if strings.TrimSpace(question) == "" {
		return domain.ResponseResult{
			Answer:     MsgEmptyQuestion,
			Source:     domain.SourceValidation,
			Confidence: 0,
		}
	}

	matches := a.retriever.RelevantContext(question)
	aboutAgents := len(matches) > 0

	answer := a.composer.Compose(ctx, question, matches)

	// Confidence tracks whether context was found, not whether the generation
	// call succeeded.
	source, confidence := domain.SourceGeneral, 0.5
	if aboutAgents {
		source, confidence = domain.SourceAgent, 1.0
	}
	return domain.ResponseResult{
		Answer:     answer,
		Source:     source,
		Confidence: confidence,
	}
}
