package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		cur, prev float64
		want      Growth
	}{
		{150, 100, Growth{Percent: "+50.0%", Trend: TrendPositive}},
		{0, 0, Growth{Percent: "0.0%", Trend: TrendNeutral}},
		{10, 0, Growth{Percent: Infinite, Trend: TrendPositive, Infinite: true}},
		{-5, 0, Growth{Percent: "0.0%", Trend: TrendNeutral}},
		{50, 100, Growth{Percent: "-50.0%", Trend: TrendNegative}},
		{100, 100, Growth{Percent: "0.0%", Trend: TrendNeutral}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CalculateGrowth(tc.cur, tc.prev), "%v vs %v", tc.cur, tc.prev)
	}
}
