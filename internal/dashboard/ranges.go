package dashboard

import (
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/apperr"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

// Request is one pipeline run. Compare is nil outside comparison mode.
type Request struct {
	Current sales.Range
	Compare *sales.Range
}

// Query carries the raw date inputs of a run, YYYY-MM-DD or empty.
type Query struct {
	Start        string
	End          string
	Compare      bool
	CompareStart string
	CompareEnd   string
}

// DefaultRanges returns this month up to today and the whole previous month.
func DefaultRanges(now time.Time, loc *time.Location) (cur, prev sales.Range) {
	now = now.In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	cur = sales.DayRange(first, now)
	prevFirst := first.AddDate(0, -1, 0)
	prev = sales.DayRange(prevFirst, first.AddDate(0, 0, -1))
	return cur, prev
}

// ResolveRequest fills missing dates with the defaults. A half-specified
// range falls back to the default as a whole.
func ResolveRequest(q Query, now time.Time, loc *time.Location) (Request, error) {
	defCur, defPrev := DefaultRanges(now, loc)
	req := Request{Current: defCur}
	if q.Start != "" && q.End != "" {
		r, err := sales.ParseDayRange(q.Start, q.End, loc)
		if err != nil {
			return Request{}, apperr.Wrap(apperr.CodeValidation, err, err.Error())
		}
		req.Current = r
	}
	if !q.Compare {
		return req, nil
	}
	prev := defPrev
	if q.CompareStart != "" && q.CompareEnd != "" {
		r, err := sales.ParseDayRange(q.CompareStart, q.CompareEnd, loc)
		if err != nil {
			return Request{}, apperr.Wrap(apperr.CodeValidation, err, err.Error())
		}
		prev = r
	}
	req.Compare = &prev
	return req, nil
}
