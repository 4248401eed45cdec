// internal/scoring/models.go
package scoring

// EnglishScores carries either an overall test score, a complete set of four
// per-skill scores, or neither. Overall takes priority when both are given.
type EnglishScores struct {
	Test      string   `json:"test"` // "ielts" or "pte"
	Overall   *float64 `json:"overall,omitempty"`
	Listening *float64 `json:"listening,omitempty"`
	Reading   *float64 `json:"reading,omitempty"`
	Writing   *float64 `json:"writing,omitempty"`
	Speaking  *float64 `json:"speaking,omitempty"`
}

// englishMode discriminates the two evaluation paths up front so the scorer
// switches exhaustively instead of re-checking field presence.
type englishMode int

const (
	englishNone englishMode = iota
	englishOverall
	englishBands
)

func (e EnglishScores) mode() englishMode {
	if e.Overall != nil {
		return englishOverall
	}
	if e.Listening != nil && e.Reading != nil && e.Writing != nil && e.Speaking != nil {
		return englishBands
	}
	return englishNone
}

// minSkill returns the lowest of the four skill scores. Only meaningful when
// mode() is englishBands.
func (e EnglishScores) minSkill() float64 {
	mn := *e.Listening
	for _, v := range []float64{*e.Reading, *e.Writing, *e.Speaking} {
		if v < mn {
			mn = v
		}
	}
	return mn
}

// WorkExperience holds the applicant's claimed years of skilled employment.
type WorkExperience struct {
	OverseasYears int `json:"overseas_years"`
	AusYears      int `json:"aus_years"`
}

// AustraliaStudy holds the Australian study requirement flags.
type AustraliaStudy struct {
	Completed bool `json:"completed"`
	Regional  bool `json:"regional"`
}

// Profile is a single applicant's attributes, immutable per evaluation.
// Callers are expected to have validated enum membership and numeric ranges
// before handing a Profile to the engine.
type Profile struct {
	Visa             string         `json:"visa"`
	Age              int            `json:"age"`
	English          EnglishScores  `json:"english"`
	Education        string         `json:"education"`
	WorkExperience   WorkExperience `json:"work_experience"`
	AustraliaStudy   AustraliaStudy `json:"australia_study"`
	ProfessionalYear bool           `json:"professional_year"`
	NAATI            bool           `json:"naati"`
	Partner          string         `json:"partner"`
}

// Result is the complete outcome of one evaluation.
type Result struct {
	Visa      string         `json:"visa"`
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
	Notes     []string       `json:"notes"`
}

// Breakdown category names, in the fixed order the aggregator emits them.
const (
	CategoryAge              = "age"
	CategoryEnglish          = "english"
	CategoryEducation        = "education"
	CategoryWorkExperience   = "work_experience"
	CategoryAustraliaStudy   = "australia_study"
	CategoryProfessionalYear = "professional_year"
	CategoryNAATI            = "naati"
	CategoryPartner          = "partner"
	CategoryStateNomination  = "state_nomination"
)
