package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
)

const (
	// BestMatchThreshold is the minimum combined score for answering directly
	// from the knowledge base.
	BestMatchThreshold = 0.5
	// contextThreshold is the lower floor used when collecting context for the
	// generation call.
	contextThreshold = 0.3
	// contextLimit caps how many matches go into the generation context.
	contextLimit = 3
)

// Retriever ranks knowledge-store entries against a query. Every call scans the
// full store; fine at curated-KB sizes, an index would be needed at larger n.
type Retriever struct {
	entries []domain.QAEntry
}

// NewRetriever wraps the loaded entries. The slice is treated as immutable.
func NewRetriever(entries []domain.QAEntry) *Retriever {
	return &Retriever{entries: entries}
}

// FindBestMatch returns the answer with the highest combined score, or ok=false
// when nothing reaches the threshold. Equal scores keep the first entry:
// replacement requires a strictly greater score.
func (r *Retriever) FindBestMatch(query string, threshold float64) (answer string, score float64, ok bool) {
	if len(r.entries) == 0 {
		return "", 0, false
	}

	var best string
	var bestScore float64
	for _, e := range r.entries {
		if s := Score(query, e.Question); s > bestScore {
			bestScore = s
			best = e.Answer
		}
	}

	if bestScore >= threshold {
		return best, bestScore, true
	}
	return "", 0, false
}

// RelevantContext returns up to three matches scoring above the context floor,
// best first. The sort is stable, so equal scores keep store order. An empty
// result means the query is not about the support domain.
func (r *Retriever) RelevantContext(query string) []domain.ScoredMatch {
	var matches []domain.ScoredMatch
	for _, e := range r.entries {
		if s := Score(query, e.Question); s > contextThreshold {
			matches = append(matches, domain.ScoredMatch{Entry: e, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > contextLimit {
		matches = matches[:contextLimit]
	}
	return matches
}

// FormatContext renders matches as the numbered block handed to the generator.
func FormatContext(matches []domain.ScoredMatch) string {
	if len(matches) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Here is relevant information from our knowledge base:\n\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. Q: %s\n   A: %s\n\n", i+1, m.Entry.Question, m.Entry.Answer)
	}
	return b.String()
}
