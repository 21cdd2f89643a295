package metrics

import "fmt"

type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// Infinite is shown when the previous period was zero and the current one is not.
const Infinite = "∞"

type Growth struct {
	Percent  string `json:"percent"`
	Trend    Trend  `json:"trend"`
	Infinite bool   `json:"infinite,omitempty"`
}

// CalculateGrowth compares a current value against the previous period's.
func CalculateGrowth(current, previous float64) Growth {
	if previous == 0 {
		if current > 0 {
			return Growth{Percent: Infinite, Trend: TrendPositive, Infinite: true}
		}
		return Growth{Percent: "0.0%", Trend: TrendNeutral}
	}
	pct := (current - previous) / previous * 100
	g := Growth{Percent: fmt.Sprintf("%.1f%%", pct), Trend: TrendNeutral}
	switch {
	case pct > 0:
		g.Percent = "+" + g.Percent
		g.Trend = TrendPositive
	case pct < 0:
		g.Trend = TrendNegative
	}
	return g
}
