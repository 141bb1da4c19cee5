package uae

import (
	"strings"

	"github.com/ldnexus/match-engine/internal/talent"
)

// LanguageRequirement captures which languages the posting demands. English
// is always required on the UAE market.
type LanguageRequirement struct {
	ArabicRequired  bool   `json:"arabic_required"`
	EnglishRequired bool   `json:"english_required"`
	Preferred       string `json:"preferred,omitempty"`
}

// BusinessContext carries UAE-specific framing for a posting. Callers may
// override any field; the analyzer fills the rest from keyword defaults.
type BusinessContext struct {
	Emirate             string   `json:"emirate" mapstructure:"emirate"`
	CompanyType         string   `json:"company_type" mapstructure:"company_type"`
	CulturalSensitivity string   `json:"cultural_sensitivity" mapstructure:"cultural_sensitivity"`
	Compliance          []string `json:"compliance" mapstructure:"compliance"`
}

// JobInsights is the outcome of analyzing a job posting for the UAE market.
type JobInsights struct {
	Sector    string              `json:"sector"`
	Languages LanguageRequirement `json:"languages"`
	Format    Format              `json:"format"`
	Context   BusinessContext     `json:"context"`
	Urgency   Urgency             `json:"urgency"`
}

// AnalyzeJob derives UAE-market signals from the posting, honoring any
// explicit business-context overrides.
func AnalyzeJob(job *talent.Job, overrides *BusinessContext) *JobInsights {
	if job == nil {
		job = &talent.Job{}
	}

	text := strings.ToLower(job.FreeText())

	return &JobInsights{
		Sector:    jobSector(text),
		Languages: languageRequirements(text),
		Format:    jobFormat(text),
		Context:   businessContext(text, overrides),
		Urgency:   classifyUrgency(text),
	}
}

// jobSector picks the single best-matching sector: first keyword hit wins.
func jobSector(text string) string {
	for _, s := range sectors {
		if countMatches(text, s.english) > 0 || countMatches(text, s.arabic) > 0 {
			return s.name
		}
	}
	return defaultSector
}

func languageRequirements(text string) LanguageRequirement {
	req := LanguageRequirement{EnglishRequired: true}

	if containsArabicScript(text) || strings.Contains(text, "arabic") {
		req.ArabicRequired = true
	}
	if strings.Contains(text, "bilingual") {
		req.Preferred = "bilingual"
	}

	return req
}

func jobFormat(text string) Format {
	for _, entry := range formatKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.format
			}
		}
	}
	return FormatInPerson
}

func businessContext(text string, overrides *BusinessContext) BusinessContext {
	ctx := BusinessContext{
		Emirate:             detectEmirate(text),
		CompanyType:         detectCompanyType(text),
		CulturalSensitivity: "high",
		Compliance:          []string{"UAE Labour Law"},
	}

	if overrides == nil {
		return ctx
	}

	if v := strings.TrimSpace(overrides.Emirate); v != "" {
		ctx.Emirate = v
	}
	if v := strings.TrimSpace(overrides.CompanyType); v != "" {
		ctx.CompanyType = v
	}
	if v := strings.TrimSpace(overrides.CulturalSensitivity); v != "" {
		ctx.CulturalSensitivity = v
	}
	if len(overrides.Compliance) > 0 {
		ctx.Compliance = overrides.Compliance
	}

	return ctx
}

func detectEmirate(text string) string {
	emirates := []struct{ keyword, name string }{
		{"abu dhabi", "Abu Dhabi"},
		{"sharjah", "Sharjah"},
		{"ajman", "Ajman"},
		{"fujairah", "Fujairah"},
		{"ras al khaimah", "Ras Al Khaimah"},
		{"umm al quwain", "Umm Al Quwain"},
	}

	for _, e := range emirates {
		if strings.Contains(text, e.keyword) {
			return e.name
		}
	}

	return "Dubai"
}

func detectCompanyType(text string) string {
	gov := sectorByName("Government")
	if gov != nil && countMatches(text, gov.english)+countMatches(text, gov.arabic) > 0 {
		return "government"
	}
	if strings.Contains(text, "multinational") {
		return "multinational"
	}
	return "private"
}

func classifyUrgency(text string) Urgency {
	if countMatches(text, urgencyKeywords[UrgencyHigh]) > 0 {
		return UrgencyHigh
	}
	if countMatches(text, urgencyKeywords[UrgencyMedium]) > 0 {
		return UrgencyMedium
	}
	return UrgencyLow
}
