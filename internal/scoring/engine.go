// Package scoring implements the points-test evaluation engine: a bucket
// lookup primitive, one pure scorer per category, and an aggregator that
// combines them into a score breakdown with provenance notes.
package scoring

import (
	"fmt"
	"sort"

	apperrors "auswo-calculator/internal/common/errors"
	"auswo-calculator/internal/rules"
)

// Disclaimer is attached to every result.
const Disclaimer = "Demo only. Verify with current DHA policy if used in production."

// Engine evaluates applicant profiles against one immutable rule table.
// All methods are pure; an Engine is safe for concurrent use.
type Engine struct {
	table *rules.Table
}

func NewEngine(table *rules.Table) *Engine {
	return &Engine{table: table}
}

// Table exposes the rule table for health/identity reporting.
func (e *Engine) Table() *rules.Table {
	return e.table
}

// bucketPoints returns the points of the first bucket, in table-definition
// order, whose range contains v. An absent max means open-ended upwards.
// No match scores 0.
func bucketPoints(buckets []rules.Bucket, v float64) int {
	for _, b := range buckets {
		if v >= b.Min && (b.Max == nil || v <= *b.Max) {
			return b.Points
		}
	}
	return 0
}

// bandPoints returns the points of the highest min threshold that v meets or
// exceeds, regardless of table order. The weakest skill determines the band,
// and a value below every threshold keeps the zero floor.
func bandPoints(bands []rules.Bucket, v float64) int {
	sorted := make([]rules.Bucket, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Min > sorted[j].Min
	})
	for _, b := range sorted {
		if v >= b.Min {
			return b.Points
		}
	}
	return 0
}

func (e *Engine) ScoreAge(age int) int {
	return bucketPoints(e.table.Age, float64(age))
}

// ScoreEnglish applies the overall table when an overall score is present,
// else bands the minimum of a complete four-skill set. Partial skill data is
// a valid zero-point outcome, not an error.
func (e *Engine) ScoreEnglish(eng EnglishScores) int {
	switch eng.mode() {
	case englishOverall:
		if eng.Test == "pte" {
			return bucketPoints(e.table.English.PTEOverall, *eng.Overall)
		}
		return bucketPoints(e.table.English.IELTSOverall, *eng.Overall)
	case englishBands:
		if eng.Test == "pte" {
			return bandPoints(e.table.English.PTEBands, eng.minSkill())
		}
		return bandPoints(e.table.English.IELTSBands, eng.minSkill())
	default:
		return 0
	}
}

func (e *Engine) ScoreEducation(level string) int {
	return e.table.Education.Mapping[level]
}

// ScoreExperience combines the overseas and Australian sub-scores per the
// table's declared mode. An unrecognized mode scores 0; the loader's schema
// enum keeps that from happening with a valid table.
func (e *Engine) ScoreExperience(exp WorkExperience) int {
	r := e.table.WorkExperience
	over := bucketPoints(r.Overseas, float64(exp.OverseasYears))
	aus := bucketPoints(r.Australia, float64(exp.AusYears))

	switch r.Mode {
	case rules.ModeSumCap:
		if over+aus > r.CapPoints {
			return r.CapPoints
		}
		return over + aus
	case rules.ModeMaxOnly:
		if over > aus {
			return over
		}
		return aus
	default:
		return 0
	}
}

// ScoreAustraliaStudy awards the base points only when the study requirement
// is completed; the regional bonus is additive on top of the base, never
// standalone.
func (e *Engine) ScoreAustraliaStudy(stu AustraliaStudy) int {
	if !stu.Completed {
		return 0
	}
	pts := e.table.AustraliaStudy.Points
	if stu.Regional {
		pts += e.table.AustraliaStudy.RegionalBonus
	}
	return pts
}

func (e *Engine) ScoreProfessionalYear(completed bool) int {
	if !completed {
		return 0
	}
	return e.table.ProfessionalYear.Points
}

func (e *Engine) ScoreNAATI(accredited bool) int {
	if !accredited {
		return 0
	}
	return e.table.NAATI.Points
}

func (e *Engine) ScorePartner(status string) int {
	return e.table.Partner[status]
}

// ScoreStateNomination looks up the visa subclass bonus; "189" maps to 0 in
// the deployed table and absent subclasses score 0.
func (e *Engine) ScoreStateNomination(visa string) int {
	return e.table.StateNomination[visa]
}

// Evaluate scores every category in fixed order and sums them. The result is
// all-or-nothing: an unexpected failure in any scorer is recovered here and
// returned as a single evaluation error with no partial breakdown.
func (e *Engine) Evaluate(p *Profile) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperrors.NewEvaluationFailedError(fmt.Sprintf("%v", r))
		}
	}()

	breakdown := map[string]int{
		CategoryAge:              e.ScoreAge(p.Age),
		CategoryEnglish:          e.ScoreEnglish(p.English),
		CategoryEducation:        e.ScoreEducation(p.Education),
		CategoryWorkExperience:   e.ScoreExperience(p.WorkExperience),
		CategoryAustraliaStudy:   e.ScoreAustraliaStudy(p.AustraliaStudy),
		CategoryProfessionalYear: e.ScoreProfessionalYear(p.ProfessionalYear),
		CategoryNAATI:            e.ScoreNAATI(p.NAATI),
		CategoryPartner:          e.ScorePartner(p.Partner),
		CategoryStateNomination:  e.ScoreStateNomination(p.Visa),
	}

	total := 0
	for _, v := range breakdown {
		total += v
	}

	return &Result{
		Visa:      p.Visa,
		Total:     total,
		Breakdown: breakdown,
		Notes: []string{
			fmt.Sprintf("Rules %s (%s)", e.table.Meta.Version, e.table.Meta.UpdatedAt),
			Disclaimer,
		},
	}, nil
}
