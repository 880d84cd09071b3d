package domain

// Source identifies which path produced an answer.
type Source string

const (
	// SourceValidation marks the terminal result for empty input.
	SourceValidation Source = "validation"
	// SourceAgent marks answers grounded in the knowledge base.
	SourceAgent Source = "ai_agent"
	// SourceGeneral marks answers with no knowledge-base context.
	SourceGeneral Source = "ai_general"
)

// QAEntry is one curated question/answer pair. Entries are loaded once at
// startup and never mutated.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ScoredMatch pairs a knowledge entry with its combined score for one query.
type ScoredMatch struct {
	Entry QAEntry `json:"entry"`
	Score float64 `json:"score"`
}

// ResponseResult is what the agent hands back to the UI layer for one question.
type ResponseResult struct {
	Answer     string  `json:"answer"`
	Source     Source  `json:"source"`
	Confidence float64 `json:"confidence"`
}
