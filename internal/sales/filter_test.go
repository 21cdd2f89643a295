package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestFilterPeriodBoundaries(t *testing.T) {
	r, err := ParseDayRange("2024-06-01", "2024-06-30", time.UTC)
	require.NoError(t, err)

	rows := []models.Transaction{
		{Contact: "start", Date: r.Start},
		{Contact: "end", Date: r.End},
		{Contact: "before", Date: r.Start.Add(-time.Microsecond)},
		{Contact: "after", Date: r.End.Add(time.Microsecond)},
		{Contact: "undated"},
	}
	got := FilterPeriod(rows, r)
	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].Contact)
	assert.Equal(t, "end", got[1].Contact)
}

func TestParseDayRangeRejectsBadInput(t *testing.T) {
	_, err := ParseDayRange("2024-13-01", "2024-06-30", time.UTC)
	assert.Error(t, err)
	_, err = ParseDayRange("2024-06-30", "2024-06-01", time.UTC)
	assert.Error(t, err)
}
