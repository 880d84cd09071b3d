package service

import (
	"context"
	"time"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
	"github.com/VisionOra/support-agent-test-task/internal/support/llm"
	"github.com/VisionOra/support-agent-test-task/internal/support/match"
)

// User-visible fallback strings. The no-generator and generator-failed cases
// are distinct messages on purpose; a confident knowledge-base match is always
// returned verbatim instead.
const (
	MsgNoAPIKey = "I apologize, but I need an OpenAI API key to provide intelligent responses. " +
		"Please set the OPENAI_API_KEY environment variable."
	MsgGenerationTrouble = "I'm having trouble processing your question right now. " +
		"Please try asking about Thoughtful AI's agents (EVA, CAM, or PHIL)."
)

const systemPersona = "You are a helpful customer support AI agent for Thoughtful AI, a company that provides " +
	"AI-powered automation agents for healthcare processes. " +
	"Your role is to assist users with questions about Thoughtful AI's products and services. " +
	"Be friendly, professional, and concise in your responses."

const contextInstruction = "\nUse the above information to answer questions about Thoughtful AI's agents. " +
	"If the question is about our agents (EVA, CAM, PHIL), use the provided information. " +
	"For other questions, provide helpful general responses."

// Composer turns a query plus retrieved context into the final answer text.
type Composer struct {
	retriever *match.Retriever
	generator llm.Generator // nil in knowledge-base-only mode
}

// NewComposer wires the retriever used for fallbacks and an optional generator.
func NewComposer(retriever *match.Retriever, generator llm.Generator) *Composer {
	return &Composer{retriever: retriever, generator: generator}
}

// Compose never returns an error: every failure path resolves to a
// knowledge-store answer or a fixed message.
func (c *Composer) Compose(ctx context.Context, query string, matches []domain.ScoredMatch) string {
	if c.generator == nil {
		if answer, _, ok := c.retriever.FindBestMatch(query, match.BestMatchThreshold); ok {
			recordFallbackAnswer()
			return answer
		}
		return MsgNoAPIKey
	}

	system := systemPersona
	if len(matches) > 0 {
		system += "\n\n" + match.FormatContext(matches) + contextInstruction
	}

	start := time.Now()
	answer, err := c.generator.Generate(ctx, system, query)
	recordGenerationCall(time.Since(start), err)
	if err != nil {
		NewLogger(ctx).LogError("compose", err)
		if answer, _, ok := c.retriever.FindBestMatch(query, match.BestMatchThreshold); ok {
			recordFallbackAnswer()
			return answer
		}
		return MsgGenerationTrouble
	}
	return answer
}
