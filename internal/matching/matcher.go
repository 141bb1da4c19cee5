package matching

import (
	"context"

	"github.com/ldnexus/match-engine/internal/embedding"
	"github.com/ldnexus/match-engine/internal/talent"
	"go.uber.org/zap"
)

// embedder is the slice of the embedding provider the matcher consumes. A nil
// return means the vector is unavailable for this call.
type embedder interface {
	EmbedProfile(ctx context.Context, profile *talent.Profile) []float32
	EmbedJob(ctx context.Context, job *talent.Job) []float32
}

// Matcher is the single entry point for generic profile-to-job scoring. It
// tries the embedding path first and falls back to the heuristic scorer
// transparently; callers always receive a usable score.
type Matcher struct {
	provider embedder
	fallback *Heuristic
	logger   *zap.Logger
}

// NewMatcher builds the orchestrator. The provider may be nil, in which case
// every call takes the heuristic path.
func NewMatcher(provider embedder, fallback *Heuristic, log *zap.Logger) *Matcher {
	if fallback == nil {
		fallback = NewHeuristic(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Matcher{
		provider: provider,
		fallback: fallback,
		logger:   log,
	}
}

// Score ranks the profile against the job, returning a value in [0, 1].
// It never fails: embedding unavailability, dimension mismatches and any
// unexpected panic all degrade to the heuristic path.
func (m *Matcher) Score(ctx context.Context, profile *talent.Profile, job *talent.Job) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("match scoring panicked; using heuristic fallback", zap.Any("panic", r))
			score = m.fallback.Score(profile, job)
		}
	}()

	if m.provider == nil {
		return m.fallback.Score(profile, job)
	}

	profileVec := m.provider.EmbedProfile(ctx, profile)
	jobVec := m.provider.EmbedJob(ctx, job)
	if profileVec == nil || jobVec == nil {
		m.logger.Debug("embeddings unavailable; using heuristic fallback")
		return m.fallback.Score(profile, job)
	}

	cosine, err := embedding.Cosine(profileVec, jobVec)
	if err != nil {
		m.logger.Warn("cosine similarity failed; using heuristic fallback", zap.Error(err))
		return m.fallback.Score(profile, job)
	}

	return clamp(embedding.Normalize(cosine), 0, 1)
}
