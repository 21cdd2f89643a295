package metrics

import (
	"sort"
	"strings"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// insightKeys are the numeric campaign sort keys.
var insightKeys = map[string]func(models.Insights) float64{
	"spend":                   func(i models.Insights) float64 { return i.Spend },
	"impressions":             func(i models.Insights) float64 { return i.Impressions },
	"purchases":               func(i models.Insights) float64 { return i.Purchases },
	"messaging_conversations": func(i models.Insights) float64 { return i.MessagingConversations },
	"cpm":                     func(i models.Insights) float64 { return i.CPM },
	"ctr":                     func(i models.Insights) float64 { return i.CTR },
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// SortCampaigns filters campaigns by a case-insensitive name match and sorts
// them by key. Unknown numeric keys leave the order unchanged.
func SortCampaigns(cs []models.Campaign, search, key, dir string) []models.Campaign {
	if key == "" {
		key = "spend"
	}
	term := norm(search)
	out := make([]models.Campaign, 0, len(cs))
	for _, c := range cs {
		if term == "" || strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}

	var less func(a, b models.Campaign) bool
	switch key {
	case "name":
		less = func(a, b models.Campaign) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "status":
		less = func(a, b models.Campaign) bool { return strings.ToLower(a.Status) < strings.ToLower(b.Status) }
	default:
		val, ok := insightKeys[key]
		if !ok {
			return out
		}
		less = func(a, b models.Campaign) bool { return val(a.Insights) < val(b.Insights) }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// IsCampaignSortKey reports whether key can be passed to SortCampaigns.
func IsCampaignSortKey(key string) bool {
	if key == "name" || key == "status" {
		return true
	}
	_, ok := insightKeys[key]
	return ok
}

// SearchAds returns the ads whose name contains search, highest spend first.
func SearchAds(ads []models.Ad, search string) []models.Ad {
	term := norm(search)
	out := make([]models.Ad, 0, len(ads))
	for _, a := range ads {
		if term == "" || strings.Contains(strings.ToLower(a.Name), term) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Insights.Spend > out[j].Insights.Spend })
	return out
}

func FindCampaign(cs []models.Campaign, id string) (models.Campaign, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return models.Campaign{}, false
}
