package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestCategoryDetailsApportionment(t *testing.T) {
	rows := []models.Transaction{
		{Categories: "A, B, C", P1: 100, UpP1: 40, UpP2: 10, NewCustomer: true},
		{Categories: "A", UpP2: 30},
		{Categories: "", P1: 999},
		{Categories: "D"},
	}
	cats := CategoryDetails(rows)
	require.Len(t, cats, 3)

	a, ok := FindCategory(cats, "A")
	require.True(t, ok)
	assert.Equal(t, "A", cats[0].Name)
	assert.InDelta(t, 100.0/3, a.P1Revenue, 1e-9)
	assert.InDelta(t, 10.0/3+30, a.UpP2Revenue, 1e-9)
	assert.Equal(t, 1, a.P1Bills)
	assert.Equal(t, 1, a.UpP1Bills)
	assert.Equal(t, 2, a.UpP2Bills)
	assert.Equal(t, 1, a.NewCustomers)
	assert.Len(t, a.Transactions, 2)

	_, ok = FindCategory(cats, "D")
	assert.False(t, ok, "rows without revenue contribute nothing")

	// revenue conserving across the split row's categories
	var total float64
	for _, c := range cats {
		total += c.TotalRevenue
	}
	assert.InDelta(t, 150+30, total, 1e-9)
}

func TestTopCategories(t *testing.T) {
	cats := make([]models.CategoryAgg, 20)
	assert.Len(t, TopCategories(cats, 15), 15)
	assert.Len(t, TopCategories(cats[:3], 15), 3)
}
