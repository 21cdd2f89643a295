package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestDerivedRatesSafeDiv(t *testing.T) {
	assert.Zero(t, P1ToUpP1Rate(models.PeriodSummary{UpP1Bills: 3}))
	assert.Zero(t, P2ConversionRate(models.PeriodSummary{UpP2Bills: 3}))
	assert.Zero(t, ROAS(500, 0))
	assert.Zero(t, CostPerPurchase(500, 0))

	assert.InDelta(t, 25, P1ToUpP1Rate(models.PeriodSummary{P1Bills: 4, UpP1Bills: 1}), 1e-9)
	assert.InDelta(t, 50, P2ConversionRate(models.PeriodSummary{P2Leads: 4, UpP2Bills: 2}), 1e-9)
	assert.InDelta(t, 2.5, ROAS(250, 100), 1e-9)
	assert.InDelta(t, 20, CostPerPurchase(100, 5), 1e-9)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "฿1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "฿1,234", FormatCurrencyShort(1234.99))
	assert.Equal(t, "12,345", FormatNumber(12345.9))
	assert.Equal(t, "2.35x", FormatROAS(2.345678))
	assert.Equal(t, "12.5%", FormatRate(12.5))
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 0.667, Round3(2.0/3))
}
