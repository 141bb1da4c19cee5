package uae

import "fmt"

const neutralRecommendation = "Profile could not be fully analyzed; consider completing all profile sections for a more accurate UAE market assessment."

// recommendations turns the sub-scores into human-readable guidance for the
// candidate.
func recommendations(profile *ProfileInsights, job *JobInsights, sector, language, format, cultural float64) []string {
	var recs []string

	if sector < 0.5 {
		recs = append(recs, fmt.Sprintf("Gain sector-specific experience in the UAE %s sector to improve your match for roles like this.", job.Sector))
	}

	if language < 0.6 && job.Languages.ArabicRequired && (profile.Arabic == ProficiencyBasic || profile.Arabic == ProficiencyNone) {
		recs = append(recs, "Improving your Arabic language skills would significantly strengthen your fit for Arabic-required roles in the UAE.")
	}

	if format < 0.5 {
		recs = append(recs, fmt.Sprintf("This role favors %s delivery; adding %s training experience to your profile would improve your match.", formatLabel(job.Format), formatLabel(job.Format)))
	}

	if cultural < 0.6 {
		recs = append(recs, "Gaining exposure to UAE business culture and Gulf workplace norms would improve your regional fit.")
	}

	if sector > 0.8 {
		recs = append(recs, fmt.Sprintf("Your %s sector background is a strong asset for this role.", job.Sector))
	}

	return recs
}

func formatLabel(f Format) string {
	switch f {
	case FormatVirtual:
		return "virtual"
	case FormatInPerson:
		return "in-person"
	case FormatHybrid:
		return "hybrid"
	case FormatWorkshop:
		return "workshop"
	case FormatBlended:
		return "blended"
	case FormatSelfPaced:
		return "self-paced"
	}
	return string(f)
}
