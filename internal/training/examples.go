package training

import (
	"seedgarden/internal/domain"

	"go.uber.org/zap"
)

// MemoryExampleRepository is an in-memory implementation of domain.ExampleRepository.
// It also counts examples per label and remembers the order labels first appeared in.
type MemoryExampleRepository struct {
	examples []domain.Example
	scores   map[string]int
	order    []string
	logger   *zap.Logger
}

// NewMemoryExampleRepository creates an empty repository.
func NewMemoryExampleRepository(logger *zap.Logger) *MemoryExampleRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryExampleRepository{
		scores: make(map[string]int),
		logger: logger,
	}
}

// Save appends the example and bumps the count for its label.
func (r *MemoryExampleRepository) Save(example domain.Example) {
	r.examples = append(r.examples, example)
	if _, seen := r.scores[example.Label]; !seen {
		r.order = append(r.order, example.Label)
	}
	r.scores[example.Label]++

	r.logger.Debug("example saved",
		zap.String("label", example.Label),
		zap.Int("count", r.scores[example.Label]),
		zap.Int("total", len(r.examples)))
}

// All returns a copy of the examples in insertion order.
func (r *MemoryExampleRepository) All() []domain.Example {
	out := make([]domain.Example, len(r.examples))
	copy(out, r.examples)
	return out
}

func (r *MemoryExampleRepository) Count(label string) int {
	return r.scores[label]
}

// Dominant returns the label with the highest count. On a tie the label that
// was saved first wins. The boolean is false when nothing was saved yet.
func (r *MemoryExampleRepository) Dominant() (string, bool) {
	if len(r.order) == 0 {
		return "", false
	}
	best := r.order[0]
	for _, label := range r.order[1:] {
		if r.scores[label] > r.scores[best] {
			best = label
		}
	}
	return best, true
}
