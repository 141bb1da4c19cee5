package uae

import (
	"strings"
	"unicode"

	"github.com/ldnexus/match-engine/internal/talent"
)

// ExperienceTier estimates UAE residency and market familiarity on a 1-5
// scale. Higher tiers unlock in-person and government scoring bonuses.
type ExperienceTier int

const (
	TierNewcomer ExperienceTier = iota + 1
	TierRegionalAware
	TierExperiencedExpat
	TierEstablishedResident
	TierLocalExpert
)

// ProfileInsights is the outcome of analyzing a professional profile for the
// UAE market.
type ProfileInsights struct {
	Sectors     []string    `json:"sectors"`
	Arabic      Proficiency `json:"arabic"`
	English     Proficiency `json:"english"`
	Bilingual   bool        `json:"bilingual"`
	Formats     []Format    `json:"formats"`
	Tier        ExperienceTier `json:"experience_tier"`
	CulturalFit float64     `json:"cultural_fit"`
}

// AnalyzeProfile derives UAE-market signals from the profile's free text.
func AnalyzeProfile(profile *talent.Profile) *ProfileInsights {
	if profile == nil {
		profile = &talent.Profile{}
	}

	text := strings.ToLower(profile.FreeText())

	return &ProfileInsights{
		Sectors:     detectSectors(text),
		Arabic:      arabicProficiency(text),
		English:     ProficiencyFluent,
		Bilingual:   strings.Contains(text, "bilingual") || strings.Contains(text, "multilingual"),
		Formats:     preferredFormats(text),
		Tier:        experienceTier(profile, text),
		CulturalFit: culturalFit(text),
	}
}

// detectSectors lists every sector with at least one keyword hit in the text.
func detectSectors(text string) []string {
	var detected []string
	for _, s := range sectors {
		if countMatches(text, s.english) > 0 || countMatches(text, s.arabic) > 0 {
			detected = append(detected, s.name)
		}
	}
	return detected
}

func arabicProficiency(text string) Proficiency {
	if containsArabicScript(text) {
		return ProficiencyFluent
	}
	if strings.Contains(text, "arabic") {
		return ProficiencyFluent
	}
	if strings.Contains(text, "bilingual") || strings.Contains(text, "multilingual") {
		return ProficiencyConversational
	}
	return ProficiencyNone
}

func preferredFormats(text string) []Format {
	var formats []Format
	for _, entry := range formatKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				formats = append(formats, entry.format)
				break
			}
		}
	}

	if len(formats) == 0 {
		formats = []Format{FormatVirtual}
	}

	return formats
}

func experienceTier(profile *talent.Profile, text string) ExperienceTier {
	location := strings.ToLower(profile.Location)
	bio := strings.ToLower(profile.Bio)

	switch {
	case strings.Contains(text, "emirati") || strings.Contains(text, "uae national"):
		return TierLocalExpert
	case mentionsUAE(location) && profile.YearsExperience >= 5:
		return TierEstablishedResident
	case mentionsUAE(location) || mentionsUAE(bio):
		return TierExperiencedExpat
	case mentionsGulf(text):
		return TierRegionalAware
	}

	return TierNewcomer
}

// culturalFit starts at a 0.5 base with bonuses for explicit cultural
// awareness signals, capped at 1.0.
func culturalFit(text string) float64 {
	fit := 0.5
	if strings.Contains(text, "cultural") {
		fit += 0.15
	}
	if strings.Contains(text, "international") || strings.Contains(text, "multicultural") {
		fit += 0.15
	}
	if strings.Contains(text, "middle east") || strings.Contains(text, "gulf") {
		fit += 0.2
	}
	if fit > 1 {
		fit = 1
	}
	return fit
}

func mentionsUAE(text string) bool {
	for _, kw := range []string{"uae", "united arab emirates", "dubai", "abu dhabi", "sharjah", "emirates"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func mentionsGulf(text string) bool {
	for _, kw := range []string{"gulf", "gcc", "middle east", "saudi", "qatar", "bahrain", "kuwait", "oman"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func containsArabicScript(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
