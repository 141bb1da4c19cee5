package ranking

import "context"

type minScoreFilter struct {
	min float64
}

// NewMinScore creates a filter that drops candidates scoring below min.
// A non-positive min keeps everyone.
func NewMinScore(min float64) Filter {
	return &minScoreFilter{min: min}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Apply(_ context.Context, candidates []*Candidate) ([]*Candidate, Step, error) {
	initial := len(candidates)
	if f.min <= 0 {
		return candidates, Step{Initial: initial, Left: initial}, nil
	}

	kept := make([]*Candidate, 0, initial)
	for _, c := range candidates {
		if c.Score >= f.min {
			kept = append(kept, c)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type limitFilter struct {
	limit int
}

// NewLimit creates a filter that keeps only the top N candidates. The input
// is already sorted by score. A non-positive limit keeps everyone.
func NewLimit(limit int) Filter {
	return &limitFilter{limit: limit}
}

func (f *limitFilter) Name() string { return "limit" }

func (f *limitFilter) Apply(_ context.Context, candidates []*Candidate) ([]*Candidate, Step, error) {
	initial := len(candidates)
	if f.limit <= 0 || initial <= f.limit {
		return candidates, Step{Initial: initial, Left: initial}, nil
	}

	kept := candidates[:f.limit]
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
