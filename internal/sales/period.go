package sales

import "github.com/AngelCh415/FUNNEL_GO/internal/models"

// Period is everything derived from the ledger for one date window.
type Period struct {
	Range         Range                `json:"range"`
	Summary       models.PeriodSummary `json:"summary"`
	Channels      []models.ChannelAgg  `json:"channels"`
	ChannelTotals models.ChannelAgg    `json:"channel_totals"`
	Categories    []models.CategoryAgg `json:"categories"`
	UpsellPaths   []models.UpsellPath  `json:"upsell_paths"`
	Rows          []models.Transaction `json:"-"`
}

// ProcessPeriod filters the full ledger to r and runs every aggregator over it.
func ProcessPeriod(all []models.Transaction, r Range) Period {
	rows := FilterPeriod(all, r)
	summary, channels := Summarize(rows)
	return Period{
		Range:         r,
		Summary:       summary,
		Channels:      channels,
		ChannelTotals: ChannelTotals(channels),
		Categories:    CategoryDetails(rows),
		UpsellPaths:   UpsellPaths(LinkUpsells(rows)),
		Rows:          rows,
	}
}
