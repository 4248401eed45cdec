// Package rules defines the versioned scoring rule table and its loader.
// The table is read once at process start and never mutated afterwards, so
// it may be shared by any number of concurrent evaluations without locking.
package rules

// Meta carries the provenance attached to every scoring result.
type Meta struct {
	Version   string `json:"version"`
	UpdatedAt string `json:"updated_at"`
}

// Bucket is one row of a numeric-range point table. Max is optional; when
// absent the bucket is open-ended upwards.
type Bucket struct {
	Min    float64  `json:"min"`
	Max    *float64 `json:"max,omitempty"`
	Points int      `json:"points"`
}

// English holds the four independently-keyed English score tables. The
// overall tables are ordinary bucket sequences; the band tables are keyed
// only by min and are evaluated by descending threshold.
type English struct {
	IELTSOverall []Bucket `json:"ielts_overall"`
	PTEOverall   []Bucket `json:"pte_overall"`
	IELTSBands   []Bucket `json:"ielts_bands"`
	PTEBands     []Bucket `json:"pte_bands"`
}

// Education maps education-level keys to points.
type Education struct {
	Mapping map[string]int `json:"mapping"`
}

// Work experience combination modes.
const (
	ModeSumCap  = "sum_cap"
	ModeMaxOnly = "max_only"
)

// WorkExperience holds the overseas and Australian year-count tables and
// how their sub-scores combine.
type WorkExperience struct {
	Overseas  []Bucket `json:"overseas"`
	Australia []Bucket `json:"australia"`
	Mode      string   `json:"mode"`
	CapPoints int      `json:"cap_points"`
}

// AustraliaStudy holds the base study points and the regional bonus, which
// is only ever added on top of the base.
type AustraliaStudy struct {
	Points        int `json:"points"`
	RegionalBonus int `json:"regional_bonus"`
}

// FixedPoints is a single flag-gated point value.
type FixedPoints struct {
	Points int `json:"points"`
}

// Table is the complete immutable rule table.
type Table struct {
	Meta             Meta           `json:"meta"`
	Age              []Bucket       `json:"age"`
	English          English        `json:"english"`
	Education        Education      `json:"education"`
	WorkExperience   WorkExperience `json:"work_experience"`
	AustraliaStudy   AustraliaStudy `json:"australia_study"`
	ProfessionalYear FixedPoints    `json:"professional_year"`
	NAATI            FixedPoints    `json:"naati"`
	Partner          map[string]int `json:"partner"`
	StateNomination  map[string]int `json:"state_nomination"`
}
