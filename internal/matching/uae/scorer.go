package uae

import "strings"

// Composite weights for the overall UAE match score.
const (
	sectorShare   = 0.35
	languageShare = 0.25
	formatShare   = 0.20
	culturalShare = 0.20

	arabicKeywordBoost = 1.1
)

// Result is the full outcome of a UAE regional match.
type Result struct {
	Overall         float64  `json:"overall_score"`
	Sector          float64  `json:"sector_score"`
	Language        float64  `json:"language_score"`
	Format          float64  `json:"format_score"`
	Cultural        float64  `json:"cultural_score"`
	Recommendations []string `json:"recommendations"`
}

// scoreSector rewards direct sector alignment (0.7) plus a weighted keyword
// overlap share (up to 0.3). Arabic keyword hits count 1.1x.
func scoreSector(profile *ProfileInsights, job *JobInsights, profileText string) float64 {
	score := 0.0
	for _, name := range profile.Sectors {
		if name == job.Sector {
			score = 0.7
			break
		}
	}

	s := sectorByName(job.Sector)
	if s != nil {
		vocabSize := len(s.english) + len(s.arabic)
		if vocabSize > 0 {
			hits := float64(countMatches(profileText, s.english)) +
				float64(countMatches(profileText, s.arabic))*arabicKeywordBoost
			ratio := hits / float64(vocabSize) * s.weight
			if ratio > 1 {
				ratio = 1
			}
			score += 0.3 * ratio
		}
	}

	return clamp1(score)
}

// scoreLanguage splits up to 0.5 per required language by proficiency, adds
// 0.2 for preferred-language alignment and up to 0.3 for cultural
// communication ability.
func scoreLanguage(profile *ProfileInsights, job *JobInsights) float64 {
	score := 0.0

	if job.Languages.ArabicRequired {
		score += 0.5 * profile.Arabic.score()
	}
	if job.Languages.EnglishRequired {
		score += 0.5 * profile.English.score()
	}

	if profile.Bilingual || (job.Languages.Preferred != "" && strings.EqualFold(job.Languages.Preferred, "bilingual") && profile.Arabic != ProficiencyNone) {
		score += 0.2
	}

	score += 0.3 * profile.CulturalFit

	return clamp1(score)
}

// scoreFormat checks delivery-format alignment, with a bonus for candidates
// established enough in the UAE to deliver in person.
func scoreFormat(profile *ProfileInsights, job *JobInsights) float64 {
	score := 0.2
	for _, f := range profile.Formats {
		if f == job.Format {
			score = 0.8
			break
		}
	}

	if job.Format == FormatInPerson && profile.Tier >= TierExperiencedExpat {
		score += 0.2
	}

	return clamp1(score)
}

// scoreCultural combines the profile's cultural-fit base with its residency
// tier, plus a bonus for government postings matched by established expats.
func scoreCultural(profile *ProfileInsights, job *JobInsights) float64 {
	score := profile.CulturalFit + float64(profile.Tier)/5*0.3

	if job.Context.CompanyType == "government" && profile.Tier >= TierExperiencedExpat {
		score += 0.2
	}

	return clamp1(score)
}

// composite folds the pre-clamped sub-scores into the overall score.
func composite(sector, language, format, cultural float64) float64 {
	return sectorShare*sector + languageShare*language + formatShare*format + culturalShare*cultural
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
