package sales

import (
	"fmt"
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

const DayLayout = "2006-01-02"

// Range is an inclusive time window.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayRange spans from the first instant of start's day to the last
// instant of end's day.
func DayRange(start, end time.Time) Range {
	return Range{Start: startOfDay(start), End: startOfDay(end).AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// ParseDayRange reads two YYYY-MM-DD strings in loc.
func ParseDayRange(start, end string, loc *time.Location) (Range, error) {
	s, err := time.ParseInLocation(DayLayout, start, loc)
	if err != nil {
		return Range{}, fmt.Errorf("bad start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(DayLayout, end, loc)
	if err != nil {
		return Range{}, fmt.Errorf("bad end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Range{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return DayRange(s, e), nil
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r Range) String() string {
	return r.Start.Format(DayLayout) + ".." + r.End.Format(DayLayout)
}

// FilterPeriod keeps dated rows that fall inside r. Undated rows never match.
func FilterPeriod(rows []models.Transaction, r Range) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.HasDate() && r.Contains(row.Date) {
			out = append(out, row)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
