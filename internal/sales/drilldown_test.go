package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestChannelTransactions(t *testing.T) {
	rows := []models.Transaction{
		{Channel: "FB", Date: day(2024, 1, 1), P1: 10},
		{Channel: "FB", Date: day(2024, 1, 3), P2Lead: "lead"},
		{Channel: "FB", Date: day(2024, 1, 2), UpP2: 5, NewCustomer: true},
		{Channel: "IG", Date: day(2024, 1, 2), P1: 10},
	}

	all := ChannelTransactions(rows, "FB", "")
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Date.Day(), "newest first")
	assert.Equal(t, []string{"P2 Lead"}, all[0].BillTypes)

	rev := ChannelTransactions(rows, "FB", MetricRevenue)
	require.Len(t, rev, 2)
	assert.InDelta(t, 5, rev[0].TotalRevenue, 1e-9)

	assert.Len(t, ChannelTransactions(rows, "FB", MetricP2Leads), 1)
	assert.Len(t, ChannelTransactions(rows, "FB", MetricNewCustomers), 1)
	assert.Len(t, ChannelTransactions(rows, "FB", MetricP1Bills), 1)
	assert.Len(t, ChannelTransactions(rows, "FB", MetricUpP2Bills), 1)
	assert.Empty(t, ChannelTransactions(rows, "TikTok", ""))
}

func TestCategoryAndPathTransactions(t *testing.T) {
	cat := models.CategoryAgg{Name: "A", Transactions: []models.Transaction{
		{Date: day(2024, 1, 1), P1: 10, P2Lead: "x"},
		{Date: day(2024, 1, 2), UpP1: 10},
	}}
	all := CategoryTransactions(cat, FilterAll)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"P1"}, all[1].BillTypes, "lead marker only shown on channel drill-downs")
	assert.Len(t, CategoryTransactions(cat, FilterUpP1), 1)
	assert.Empty(t, CategoryTransactions(cat, FilterNewCustomer))

	p := models.UpsellPath{From: "A", To: "B", Transactions: []models.LinkedTransaction{
		{Transaction: models.Transaction{Date: day(2024, 1, 1), UpP1: 40, P1: 5}, OriginCategories: "A"},
	}}
	rows := PathTransactions(p)
	require.Len(t, rows, 1)
	assert.InDelta(t, 40, rows[0].TotalRevenue, 1e-9)
	assert.Equal(t, "A", rows[0].OriginCategories)
}
