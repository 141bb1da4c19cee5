package uae

// Sector weight multipliers reflect how strongly sector-specific experience
// is valued in the UAE market for that industry.
type sector struct {
	name    string
	weight  float64
	english []string
	arabic  []string
}

// Ordered table; job analysis picks the first sector with a keyword hit.
var sectors = []sector{
	{
		name:    "Technology",
		weight:  1.3,
		english: []string{"technology", "software", "digital", "it ", "fintech", "cybersecurity", "data"},
		arabic:  []string{"تكنولوجيا", "برمجيات", "رقمي", "بيانات"},
	},
	{
		name:    "Finance",
		weight:  1.4,
		english: []string{"finance", "banking", "investment", "insurance", "wealth", "audit"},
		arabic:  []string{"مالية", "مصرفية", "استثمار", "تأمين"},
	},
	{
		name:    "Oil & Gas",
		weight:  1.4,
		english: []string{"oil", "gas", "petroleum", "energy", "drilling", "refinery"},
		arabic:  []string{"نفط", "غاز", "بترول", "طاقة"},
	},
	{
		name:    "Real Estate",
		weight:  1.2,
		english: []string{"real estate", "property", "construction", "development project"},
		arabic:  []string{"عقارات", "إنشاءات", "بناء"},
	},
	{
		name:    "Tourism",
		weight:  1.2,
		english: []string{"tourism", "hospitality", "hotel", "travel", "leisure"},
		arabic:  []string{"سياحة", "ضيافة", "فندق", "سفر"},
	},
	{
		name:    "Healthcare",
		weight:  1.3,
		english: []string{"healthcare", "medical", "hospital", "clinical", "pharma"},
		arabic:  []string{"صحة", "طبي", "مستشفى", "صيدلة"},
	},
	{
		name:    "Education",
		weight:  1.1,
		english: []string{"education", "school", "university", "academic", "teaching"},
		arabic:  []string{"تعليم", "مدرسة", "جامعة", "أكاديمي"},
	},
	{
		name:    "Logistics",
		weight:  1.2,
		english: []string{"logistics", "supply chain", "shipping", "freight", "warehouse"},
		arabic:  []string{"لوجستيات", "شحن", "مستودع"},
	},
	{
		name:    "Government",
		weight:  1.3,
		english: []string{"government", "ministry", "federal", "municipality", "public sector"},
		arabic:  []string{"حكومة", "وزارة", "اتحادي", "بلدية"},
	},
	{
		name:    "Manufacturing",
		weight:  1.1,
		english: []string{"manufacturing", "factory", "industrial", "production plant"},
		arabic:  []string{"تصنيع", "مصنع", "صناعي"},
	},
}

const defaultSector = "Technology"

func sectorByName(name string) *sector {
	for i := range sectors {
		if sectors[i].name == name {
			return &sectors[i]
		}
	}
	return nil
}

// Proficiency names a language capability level.
type Proficiency string

const (
	ProficiencyNative         Proficiency = "native"
	ProficiencyFluent         Proficiency = "fluent"
	ProficiencyConversational Proficiency = "conversational"
	ProficiencyBasic          Proficiency = "basic"
	ProficiencyNone           Proficiency = "none"
)

var proficiencyScores = map[Proficiency]float64{
	ProficiencyNative:         1.0,
	ProficiencyFluent:         0.9,
	ProficiencyConversational: 0.7,
	ProficiencyBasic:          0.4,
	ProficiencyNone:           0.1,
}

func (p Proficiency) score() float64 {
	if s, ok := proficiencyScores[p]; ok {
		return s
	}
	return proficiencyScores[ProficiencyNone]
}

// Format names one of the supported training delivery formats.
type Format string

const (
	FormatVirtual   Format = "virtual"
	FormatInPerson  Format = "in_person"
	FormatHybrid    Format = "hybrid"
	FormatWorkshop  Format = "workshop"
	FormatBlended   Format = "blended"
	FormatSelfPaced Format = "self_paced"
)

// formatKeywords drives both profile preference detection and job format
// classification. Checked in order; a job defaults to in-person delivery.
var formatKeywords = []struct {
	format   Format
	keywords []string
}{
	{FormatVirtual, []string{"remote", "virtual", "online"}},
	{FormatHybrid, []string{"hybrid"}},
	{FormatWorkshop, []string{"workshop"}},
	{FormatBlended, []string{"blended"}},
	{FormatSelfPaced, []string{"self-paced", "self paced"}},
	{FormatInPerson, []string{"in-person", "in person", "onsite", "on-site", "face-to-face", "classroom"}},
}

// Urgency classifies how quickly the company wants to fill the role.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

var urgencyKeywords = map[Urgency][]string{
	UrgencyHigh:   {"urgent", "immediately", "asap", "right away"},
	UrgencyMedium: {"soon", "quickly", "fast-track", "short notice"},
}
