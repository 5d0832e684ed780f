// Package query parses the coop/date-range parameters shared by the read endpoints.
package query

import (
	"time"

	"eggfarm/entities"
	"eggfarm/pkg/apperror"
)

// Range is an inclusive interval of UTC calendar days for one coop.
type Range struct {
	CoopID string
	Start  time.Time
	End    time.Time
}

// ParseRange validates the raw coop_id, start and end parameters. Dates use
// YYYY-MM-DD; every failure is an apperror validation error.
func ParseRange(coopID, start, end string) (Range, error) {
	if coopID == "" || start == "" || end == "" {
		return Range{}, apperror.Validation(apperror.MsgMissingQueryParams)
	}
	s, err := time.Parse(entities.DateLayout, start)
	if err != nil {
		return Range{}, apperror.Validation("Invalid date: start")
	}
	e, err := time.Parse(entities.DateLayout, end)
	if err != nil {
		return Range{}, apperror.Validation("Invalid date: end")
	}
	if s.After(e) {
		return Range{}, apperror.Validation("start must not be after end")
	}
	return Range{CoopID: coopID, Start: s, End: e}, nil
}

// FirstDay is the inclusive lower bound as a date string.
func (r Range) FirstDay() string { return r.Start.Format(entities.DateLayout) }

// LastDay is the inclusive upper bound as a date string.
func (r Range) LastDay() string { return r.End.Format(entities.DateLayout) }

// DayAfterLast is the exclusive upper bound for timestamp columns: every
// instant on LastDay sorts before it.
func (r Range) DayAfterLast() string { return r.End.AddDate(0, 0, 1).Format(entities.DateLayout) }
