package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
)

// Store holds the curated question/answer pairs in file order. It is read-only
// after Load, so concurrent readers need no locking.
type Store struct {
	entries []domain.QAEntry
}

type knowledgeFile struct {
	Questions []domain.QAEntry `json:"questions"`
}

// Load reads the knowledge file once at startup. A missing or malformed file is
// not fatal: Load returns an empty store together with the error so the caller
// can report it once and keep serving in degraded mode.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return &Store{}, fmt.Errorf("read knowledge file: %w", err)
	}

	var kf knowledgeFile
	if err := json.Unmarshal(b, &kf); err != nil {
		return &Store{}, fmt.Errorf("parse knowledge file: %w", err)
	}

	return &Store{entries: kf.Questions}, nil
}

// NewStore builds a store from in-memory entries. Used by tests and the
// conformance harness.
func NewStore(entries []domain.QAEntry) *Store {
	return &Store{entries: entries}
}

// Entries returns the loaded pairs in file order.
func (s *Store) Entries() []domain.QAEntry { return s.entries }

// Len reports how many pairs were loaded.
func (s *Store) Len() int { return len(s.entries) }
