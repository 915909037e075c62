package usecase

import (
	"log"

	"surveyhub/internal/domain/entities"
)

// SurveyClassification is the counting bucket a quote falls into.

type SurveyClassification int

const (
	// SurveyNotInstructed quotes are excluded from instructed counts.
	SurveyNotInstructed SurveyClassification = iota
	SurveyOutstanding
	SurveyCompleted
)

// OutstandingSurvey is the detail row reported for an instructed quote
// whose work is not yet completed.
type OutstandingSurvey struct {
	QuoteID      string
	Discipline   string
	Organisation string
	ContactName  string
	WorkStatus   entities.WorkStatus
}

// ClassifySurvey maps a quote and its (possibly absent) instruction log to
// a counting bucket. A quote with no log, or with a log in any state other
// than completed, is outstanding; the no-log case reports a default
// not-started status. Exactly one of the two paths fires per quote, so a
// qualifying quote contributes exactly one outstanding entry.
func ClassifySurvey(q entities.Quote, l *entities.InstructionLog) (SurveyClassification, OutstandingSurvey) {
	if !q.InstructionStatus.Instructed() {
		return SurveyNotInstructed, OutstandingSurvey{}
	}

	status := entities.WorkStatusNotStarted
	if l != nil {
		status = l.WorkStatus
	}
	if status == entities.WorkStatusCompleted {
		return SurveyCompleted, OutstandingSurvey{}
	}

	return SurveyOutstanding, OutstandingSurvey{
		QuoteID:      q.ID,
		Discipline:   q.Discipline,
		Organisation: q.Organisation,
		ContactName:  q.ContactName,
		WorkStatus:   status,
	}
}

// InstructedSpend sums the committed spend across a project's instructed
// quotes: Total for instructed, PartiallyInstructedTotal for partially
// instructed. A partially instructed quote missing its partial total is a
// data-quality gap in legacy documents; it counts as zero so reporting
// never fails on old data, but it is logged loudly.
func InstructedSpend(quotes []entities.Quote) float64 {
	spend := 0.0
	for _, q := range quotes {
		switch q.InstructionStatus {
		case entities.InstructionStatusInstructed:
			spend += q.Total
		case entities.InstructionStatusPartiallyInstructed:
			if q.PartiallyInstructedTotal == nil {
				log.Printf("[summary][usecase] data-quality: quote %s is partially-instructed without partially_instructed_total, counting 0", q.ID)
				continue
			}
			spend += *q.PartiallyInstructedTotal
		}
	}
	return spend
}

// DistinctOrganisationCount counts the distinct organisation names among
// instructed quotes: "how many surveyor firms are engaged", not "how many
// quotes exist".
func DistinctOrganisationCount(quotes []entities.Quote) int {
	seen := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		if !q.InstructionStatus.Instructed() {
			continue
		}
		seen[q.Organisation] = struct{}{}
	}
	return len(seen)
}
