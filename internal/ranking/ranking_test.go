package ranking

import (
	"context"
	"testing"

	"github.com/ldnexus/match-engine/internal/talent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// titleScorer maps profile titles to fixed scores.
type titleScorer struct {
	scores map[string]float64
}

func (s *titleScorer) Score(_ context.Context, profile *talent.Profile, _ *talent.Job) float64 {
	return s.scores[profile.Title]
}

func testPool() ([]*talent.Profile, *titleScorer) {
	profiles := []*talent.Profile{
		{Title: "low"},
		{Title: "high"},
		{Title: "mid"},
	}
	scorer := &titleScorer{scores: map[string]float64{
		"low":  0.2,
		"mid":  0.5,
		"high": 0.9,
	}}
	return profiles, scorer
}

func TestRankSortsDescending(t *testing.T) {
	t.Parallel()

	profiles, scorer := testPool()
	ranker := New(scorer, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), &talent.Job{}, profiles)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "high", candidates[0].Profile.Title)
	assert.Equal(t, "mid", candidates[1].Profile.Title)
	assert.Equal(t, "low", candidates[2].Profile.Title)
}

func TestRankMinScoreFilter(t *testing.T) {
	t.Parallel()

	profiles, scorer := testPool()
	ranker := New(scorer, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), &talent.Job{}, profiles, NewMinScore(0.4))
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "high", candidates[0].Profile.Title)
	assert.Equal(t, "mid", candidates[1].Profile.Title)
}

func TestRankLimitFilter(t *testing.T) {
	t.Parallel()

	profiles, scorer := testPool()
	ranker := New(scorer, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), &talent.Job{}, profiles, NewLimit(1))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "high", candidates[0].Profile.Title)
}

func TestRankSkipsNilProfiles(t *testing.T) {
	t.Parallel()

	_, scorer := testPool()
	ranker := New(scorer, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), &talent.Job{}, []*talent.Profile{nil, {Title: "mid"}})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
}

func TestRankRequiresMatcher(t *testing.T) {
	t.Parallel()

	ranker := New(nil, zap.NewNop())
	_, err := ranker.Rank(context.Background(), &talent.Job{}, nil)
	assert.Error(t, err)
}

func TestFiltersKeepEveryoneWhenUnset(t *testing.T) {
	t.Parallel()

	profiles, scorer := testPool()
	ranker := New(scorer, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), &talent.Job{}, profiles, NewMinScore(0), NewLimit(0))
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}
