// Command conformance runs the scripted support scenarios against a
// generator-less agent and exits non-zero if any source classification is off.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
	"github.com/VisionOra/support-agent-test-task/internal/support/knowledge"
	"github.com/VisionOra/support-agent-test-task/internal/support/service"
)

func main() {
	knowledgePath := flag.String("knowledge", "data/knowledge.json", "path to the knowledge file")
	flag.Parse()

	store, err := knowledge.Load(*knowledgePath)
	if err != nil {
		log.Printf("[warn] running against an empty store: %v", err)
	}

	// No generator: every scenario resolves deterministically from the store.
	agent := service.NewAgent(store, nil)

	cases := []struct {
		name     string
		question string
		want     domain.Source
	}{
		{"direct EVA question", "What does EVA do?", domain.SourceAgent},
		{"CAM by keyword", "Tell me about CAM", domain.SourceAgent},
		{"PHIL how-to", "How does PHIL work?", domain.SourceAgent},
		{"benefits", "What are the benefits?", domain.SourceAgent},
		{"agents overview", "Tell me about the agents", domain.SourceAgent},
		{"empty input", "", domain.SourceValidation},
		{"off-topic", "What's the weather today?", domain.SourceGeneral},
	}

	failed := 0
	for i, tc := range cases {
		res := agent.GetResponse(context.Background(), tc.question)
		status := "ok"
		if res.Source != tc.want {
			status = fmt.Sprintf("FAIL (want %s, got %s)", tc.want, res.Source)
			failed++
		}
		fmt.Printf("%2d. %-22s source=%-10s confidence=%.1f %s\n",
			i+1, tc.name, res.Source, res.Confidence, status)
	}

	if failed > 0 {
		fmt.Printf("%d of %d scenarios failed\n", failed, len(cases))
		os.Exit(1)
	}
	fmt.Printf("all %d scenarios passed\n", len(cases))
}
