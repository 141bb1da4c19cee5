package matching

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ldnexus/match-engine/internal/talent"
)

// Heuristic component weights. They sum to 1.0 nominal; the jitter applied on
// top keeps equal-looking candidates from producing identical scores.
const (
	titleWeight      = 0.35
	skillsWeight     = 0.30
	experienceWeight = 0.20
	locationWeight   = 0.10
	industryWeight   = 0.05

	jitterSpan = 0.05

	// The heuristic never claims a total match or a total mismatch.
	heuristicFloor   = 0.15
	heuristicCeiling = 0.95
)

// vocabTerm is one entry of the weighted L&D keyword vocabulary used for the
// skills component.
type vocabTerm struct {
	term   string
	weight float64
}

var ldVocabulary = []vocabTerm{
	{"training", 1.0},
	{"learning", 1.0},
	{"development", 1.0},
	{"instructional design", 0.9},
	{"e-learning", 0.9},
	{"curriculum", 0.8},
	{"coaching", 0.8},
	{"facilitation", 0.7},
	{"leadership", 0.7},
	{"onboarding", 0.6},
	{"lms", 0.6},
	{"assessment", 0.5},
}

var yearsRequiredRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`)

// jitterSource yields uniform values in [0, 1). *rand.Rand satisfies it; tests
// substitute a fixed source to assert exact component sums.
type jitterSource interface {
	Float64() float64
}

// Heuristic produces a plausible match score from raw text fields when
// embeddings are unavailable. It is deterministic apart from the injected
// jitter source.
type Heuristic struct {
	jitter jitterSource
}

// NewHeuristic creates the fallback scorer. A nil jitter source falls back to
// a time-seeded generator.
func NewHeuristic(jitter jitterSource) *Heuristic {
	if jitter == nil {
		jitter = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Heuristic{jitter: jitter}
}

// Score computes the weighted component sum plus jitter, clamped last to
// [0.15, 0.95]. A component whose inputs are missing contributes 0; that is a
// neutral signal, not an error.
func (h *Heuristic) Score(profile *talent.Profile, job *talent.Job) float64 {
	if profile == nil {
		profile = &talent.Profile{}
	}
	if job == nil {
		job = &talent.Job{}
	}

	score := titleComponent(profile, job) +
		skillsComponent(profile, job) +
		experienceComponent(profile, job) +
		locationComponent(profile, job) +
		industryComponent(profile, job)

	score += h.jitter.Float64()*2*jitterSpan - jitterSpan

	return clamp(score, heuristicFloor, heuristicCeiling)
}

func titleComponent(profile *talent.Profile, job *talent.Job) float64 {
	pt := strings.ToLower(strings.TrimSpace(profile.Title))
	jt := strings.ToLower(strings.TrimSpace(job.Title))
	if pt == "" || jt == "" {
		return 0
	}

	switch {
	case pt == jt:
		return titleWeight
	case strings.Contains(pt, "learning") && strings.Contains(jt, "learning"):
		return 0.30
	case strings.Contains(pt, "development") && strings.Contains(jt, "development"):
		return 0.28
	case strings.Contains(pt, jt) || strings.Contains(jt, pt):
		return 0.25
	}

	return tokenOverlap(pt, jt) * 0.15
}

func skillsComponent(profile *talent.Profile, job *talent.Job) float64 {
	profileText := strings.ToLower(profile.FreeText())
	jobText := strings.ToLower(job.FreeText())
	if profileText == "" || jobText == "" {
		return 0
	}

	var matched, total float64
	for _, entry := range ldVocabulary {
		total += entry.weight
		if strings.Contains(profileText, entry.term) && strings.Contains(jobText, entry.term) {
			matched += entry.weight
		}
	}

	return skillsWeight * (matched / total)
}

func experienceComponent(profile *talent.Profile, job *talent.Job) float64 {
	years := profile.YearsExperience
	if years < 0 {
		years = 0
	}

	required := requiredYears(job.Requirements)
	if required <= 0 {
		// No explicit requirement in the posting; tier by absolute experience.
		switch {
		case years >= 5:
			return 0.15
		case years >= 2:
			return 0.10
		default:
			return 0.05
		}
	}

	ratio := float64(years) / float64(required)
	switch {
	case ratio >= 1:
		return experienceWeight
	case ratio >= 0.8:
		return 0.15
	case ratio >= 0.6:
		return 0.10
	}

	return 0
}

func locationComponent(profile *talent.Profile, job *talent.Job) float64 {
	pl := strings.ToLower(strings.TrimSpace(profile.Location))
	jl := strings.ToLower(strings.TrimSpace(job.Location))
	if pl == "" || jl == "" {
		return 0
	}

	switch {
	case pl == jl:
		return locationWeight
	case strings.Contains(pl, "remote") || strings.Contains(jl, "remote"):
		return 0.08
	case strings.Contains(pl, jl) || strings.Contains(jl, pl):
		return 0.06
	}

	return 0
}

func industryComponent(profile *talent.Profile, job *talent.Job) float64 {
	focus := strings.ToLower(strings.TrimSpace(profile.IndustryFocus))
	description := strings.ToLower(job.Description)
	if focus == "" || description == "" {
		return 0
	}

	if strings.Contains(description, focus) {
		return industryWeight
	}

	return 0
}

// requiredYears parses a "<N> years experience" requirement out of the job
// requirements text. Returns 0 when no explicit requirement is found.
func requiredYears(requirements string) int {
	match := yearsRequiredRe.FindStringSubmatch(requirements)
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}

	return years
}

// tokenOverlap returns the share of tokens the two strings have in common,
// relative to the longer token set.
func tokenOverlap(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shared := 0
	for token := range tokensA {
		if tokensB[token] {
			shared++
		}
	}

	longest := len(tokensA)
	if len(tokensB) > longest {
		longest = len(tokensB)
	}

	return float64(shared) / float64(longest)
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		if w := word.String(); len([]rune(w)) >= 2 {
			tokens[w] = true
		}
		word.Reset()
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
