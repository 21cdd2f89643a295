package sales

import (
	"sort"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

// Summarize makes a single pass over the period's rows and returns the period
// summary and the per-channel breakdown (sorted by revenue descending).
// Rows without a channel label count toward the summary only.
func Summarize(rows []models.Transaction) (models.PeriodSummary, []models.ChannelAgg) {
	var s models.PeriodSummary
	index := make(map[string]int)
	var channels []models.ChannelAgg

	for _, row := range rows {
		rev := row.Revenue()
		if rev > 0 {
			s.TotalBills++
			if row.NewCustomer {
				s.NewCustomers++
			} else {
				s.OldCustomers++
			}
		}
		if row.P1 > 0 {
			s.P1Bills++
		}
		if row.UpP1 > 0 {
			s.UpP1Bills++
		}
		if row.UpP2 > 0 {
			s.UpP2Bills++
		}
		if row.IsLead() {
			s.P2Leads++
		}
		s.P1Revenue += row.P1
		s.UpP1Revenue += row.UpP1
		s.UpP2Revenue += row.UpP2
		s.TotalRevenue += rev

		if row.Channel == "" {
			continue
		}
		i, ok := index[row.Channel]
		if !ok {
			i = len(channels)
			index[row.Channel] = i
			channels = append(channels, models.ChannelAgg{Name: row.Channel})
		}
		ch := &channels[i]
		if row.P1 > 0 {
			ch.P1Bills++
		}
		if row.IsLead() {
			ch.P2Leads++
		}
		if row.UpP2 > 0 {
			ch.UpP2Bills++
		}
		if row.NewCustomer {
			ch.NewCustomers++
		}
		ch.Revenue += rev
	}
	s.TotalCustomers = s.NewCustomers + s.OldCustomers

	sort.SliceStable(channels, func(i, j int) bool { return channels[i].Revenue > channels[j].Revenue })
	return s, channels
}

// ChannelTotals sums the channel rows into one totals row.
func ChannelTotals(channels []models.ChannelAgg) models.ChannelAgg {
	t := models.ChannelAgg{Name: "total"}
	for _, c := range channels {
		t.P1Bills += c.P1Bills
		t.P2Leads += c.P2Leads
		t.UpP2Bills += c.UpP2Bills
		t.NewCustomers += c.NewCustomers
		t.Revenue += c.Revenue
	}
	return t
}
