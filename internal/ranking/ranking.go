package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/ldnexus/match-engine/internal/talent"
	"go.uber.org/zap"
)

// scorer is the slice of the generic matcher the ranker consumes.
type scorer interface {
	Score(ctx context.Context, profile *talent.Profile, job *talent.Job) float64
}

// Candidate is a profile with its computed match score for a job.
type Candidate struct {
	Profile *talent.Profile `json:"profile"`
	Score   float64         `json:"score"`
}

// Step describes the result of executing one filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filter narrows a ranked candidate list.
type Filter interface {
	Name() string
	Apply(ctx context.Context, candidates []*Candidate) ([]*Candidate, Step, error)
}

// Ranker scores a pool of profiles against one job and applies filters to the
// sorted result.
type Ranker struct {
	matcher scorer
	logger  *zap.Logger
}

// New creates a Ranker around the generic matcher.
func New(matcher scorer, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{matcher: matcher, logger: log}
}

// Rank scores every profile, sorts descending by score, then runs the filter
// steps sequentially.
func (r *Ranker) Rank(ctx context.Context, job *talent.Job, profiles []*talent.Profile, steps ...Filter) ([]*Candidate, error) {
	if r.matcher == nil {
		return nil, fmt.Errorf("matcher is required")
	}

	candidates := make([]*Candidate, 0, len(profiles))
	for _, profile := range profiles {
		if profile == nil {
			continue
		}
		candidates = append(candidates, &Candidate{
			Profile: profile,
			Score:   r.matcher.Score(ctx, profile, job),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	for _, step := range steps {
		next, info, err := step.Apply(ctx, candidates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		r.logger.Info("ranking step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		candidates = next
	}

	return candidates, nil
}
