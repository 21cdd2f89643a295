package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestSortCampaigns(t *testing.T) {
	cs := []models.Campaign{
		{ID: "1", Name: "Summer Sale", Status: "PAUSED", Insights: models.Insights{Spend: 100, CTR: 2}},
		{ID: "2", Name: "brand awareness", Status: "ACTIVE", Insights: models.Insights{Spend: 300, CTR: 1}},
		{ID: "3", Name: "Winter sale", Status: "ACTIVE", Insights: models.Insights{Spend: 200, CTR: 3}},
	}

	got := SortCampaigns(cs, "", "", "")
	assert.Equal(t, []string{"2", "3", "1"}, ids(got), "default spend desc")

	got = SortCampaigns(cs, "SALE", "spend", SortAsc)
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = SortCampaigns(cs, "", "name", SortAsc)
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))

	got = SortCampaigns(cs, "", "ctr", SortDesc)
	assert.Equal(t, []string{"3", "1", "2"}, ids(got))

	assert.True(t, IsCampaignSortKey("messaging_conversations"))
	assert.False(t, IsCampaignSortKey("bogus"))
}

func TestSearchAdsAndFind(t *testing.T) {
	ads := []models.Ad{
		{Name: "Video A", Insights: models.Insights{Spend: 1}},
		{Name: "Carousel", Insights: models.Insights{Spend: 9}},
		{Name: "video B", Insights: models.Insights{Spend: 5}},
	}
	got := SearchAds(ads, "video")
	require.Len(t, got, 2)
	assert.Equal(t, "video B", got[0].Name)

	_, ok := FindCampaign([]models.Campaign{{ID: "x"}}, "y")
	assert.False(t, ok)
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	p := Paginate(rows, 2, 1)
	assert.Equal(t, []int{2, 3}, p.Rows)
	assert.Equal(t, 5, p.Total)

	assert.Equal(t, rows, Paginate(rows, 0, -3).Rows)
	assert.Empty(t, Paginate(rows, 10, 10).Rows)
	assert.Equal(t, 7, AtoiDef("x", 7))
}

func ids(cs []models.Campaign) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
