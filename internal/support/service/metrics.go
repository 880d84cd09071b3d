package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks agent and generation call counters.
type Metrics struct {
	agentCalls        int64
	generationCalls   int64
	generationErrors  int64
	generationLatency int64 // total, nanoseconds
	fallbackAnswers   int64
}

var globalMetrics = &Metrics{}

// AgentCalls reports how many questions the agent has answered.
func (m Metrics) AgentCalls() int64 { return m.agentCalls }

// GenerationCalls reports how many live generation calls were attempted.
func (m Metrics) GenerationCalls() int64 { return m.generationCalls }

// GenerationErrors reports how many generation calls failed.
func (m Metrics) GenerationErrors() int64 { return m.generationErrors }

// GenerationLatency reports the summed latency of generation calls.
func (m Metrics) GenerationLatency() time.Duration {
	return time.Duration(m.generationLatency)
}

// FallbackAnswers reports how many answers bypassed the generation service.
func (m Metrics) FallbackAnswers() int64 { return m.fallbackAnswers }

// GetMetrics returns the current metrics snapshot.
func GetMetrics() Metrics {
	return Metrics{
		agentCalls:        atomic.LoadInt64(&globalMetrics.agentCalls),
		generationCalls:   atomic.LoadInt64(&globalMetrics.generationCalls),
		generationErrors:  atomic.LoadInt64(&globalMetrics.generationErrors),
		generationLatency: atomic.LoadInt64(&globalMetrics.generationLatency),
		fallbackAnswers:   atomic.LoadInt64(&globalMetrics.fallbackAnswers),
	}
}

// ResetMetrics resets all metrics (useful for testing).
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.agentCalls, 0)
	atomic.StoreInt64(&globalMetrics.generationCalls, 0)
	atomic.StoreInt64(&globalMetrics.generationErrors, 0)
	atomic.StoreInt64(&globalMetrics.generationLatency, 0)
	atomic.StoreInt64(&globalMetrics.fallbackAnswers, 0)
}

func recordAgentCall() {
	atomic.AddInt64(&globalMetrics.agentCalls, 1)
}

func recordGenerationCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.generationCalls, 1)
	atomic.AddInt64(&globalMetrics.generationLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.generationErrors, 1)
	}
}

func recordFallbackAnswer() {
	atomic.AddInt64(&globalMetrics.fallbackAnswers, 1)
}
