package uae

import (
	"strings"

	"github.com/ldnexus/match-engine/internal/talent"
	"go.uber.org/zap"
)

// Matcher is the rule-based UAE regional scorer. It never uses embeddings
// and never fails: any panic during analysis degrades to a neutral result.
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher builds the regional matcher.
func NewMatcher(log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{logger: log}
}

// Score analyzes the profile and job for the UAE market and produces the
// five-score composite plus recommendations. Overrides, when present, pin
// parts of the business context instead of keyword defaults.
func (m *Matcher) Score(profile *talent.Profile, job *talent.Job, overrides *BusinessContext) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("uae match scoring panicked; returning neutral result", zap.Any("panic", r))
			result = neutralResult()
		}
	}()

	insights := AnalyzeProfile(profile)
	posting := AnalyzeJob(job, overrides)

	profileText := ""
	if profile != nil {
		profileText = strings.ToLower(profile.FreeText())
	}

	sector := scoreSector(insights, posting, profileText)
	language := scoreLanguage(insights, posting)
	format := scoreFormat(insights, posting)
	cultural := scoreCultural(insights, posting)

	result = &Result{
		Overall:         composite(sector, language, format, cultural),
		Sector:          sector,
		Language:        language,
		Format:          format,
		Cultural:        cultural,
		Recommendations: recommendations(insights, posting, sector, language, format, cultural),
	}

	m.logger.Debug("uae match scored",
		zap.Float64("overall", result.Overall),
		zap.Float64("sector", sector),
		zap.Float64("language", language),
		zap.Float64("format", format),
		zap.Float64("cultural", cultural),
		zap.String("job_sector", posting.Sector),
	)

	return result
}

// neutralResult is returned when analysis fails entirely.
func neutralResult() *Result {
	return &Result{
		Overall:         0.5,
		Sector:          0.5,
		Language:        0.5,
		Format:          0.5,
		Cultural:        0.5,
		Recommendations: []string{neutralRecommendation},
	}
}
