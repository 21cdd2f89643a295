package sales

import (
	"sort"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

// Channel drill-down metrics.
const (
	MetricP1Bills      = "P1_BILLS"
	MetricP2Leads      = "P2_LEADS"
	MetricUpP2Bills    = "UP_P2_BILLS"
	MetricNewCustomers = "NEW_CUSTOMERS"
	MetricRevenue      = "REVENUE"
)

// Category drill-down filters.
const (
	FilterAll         = "ALL"
	FilterP1          = "P1"
	FilterUpP1        = "UP_P1"
	FilterUpP2        = "UP_P2"
	FilterNewCustomer = "NEW_CUSTOMER"
)

// DetailRow is a drill-down line.
type DetailRow struct {
	models.Transaction
	BillTypes        []string `json:"bill_types"`
	TotalRevenue     float64  `json:"total_revenue"`
	OriginCategories string   `json:"origin_categories,omitempty"`
}

func ChannelTransactions(rows []models.Transaction, channel, metric string) []DetailRow {
	var out []models.Transaction
	for _, r := range rows {
		if r.Channel != channel {
			continue
		}
		keep := true
		switch metric {
		case MetricP1Bills:
			keep = r.P1 > 0
		case MetricP2Leads:
			keep = r.IsLead()
		case MetricUpP2Bills:
			keep = r.UpP2 > 0
		case MetricNewCustomers:
			keep = r.NewCustomer
		case MetricRevenue:
			keep = r.Revenue() > 0
		}
		if keep {
			out = append(out, r)
		}
	}
	return details(out, true)
}

func CategoryTransactions(cat models.CategoryAgg, filter string) []DetailRow {
	var out []models.Transaction
	for _, r := range cat.Transactions {
		keep := true
		switch filter {
		case FilterP1:
			keep = r.P1 > 0
		case FilterUpP1:
			keep = r.UpP1 > 0
		case FilterUpP2:
			keep = r.UpP2 > 0
		case FilterNewCustomer:
			keep = r.NewCustomer
		}
		if keep {
			out = append(out, r)
		}
	}
	return details(out, false)
}

func PathTransactions(p models.UpsellPath) []DetailRow {
	out := make([]DetailRow, 0, len(p.Transactions))
	for _, lt := range p.Transactions {
		out = append(out, DetailRow{
			Transaction:      lt.Transaction,
			BillTypes:        BillTypes(lt.Transaction, false),
			TotalRevenue:     lt.UpP1,
			OriginCategories: lt.OriginCategories,
		})
	}
	sortDetails(out)
	return out
}

// BillTypes labels the kinds of sale present on a row.
func BillTypes(t models.Transaction, withLead bool) []string {
	var out []string
	if t.P1 > 0 {
		out = append(out, "P1")
	}
	if t.UpP1 > 0 {
		out = append(out, "UP P1")
	}
	if t.UpP2 > 0 {
		out = append(out, "UP P2")
	}
	if withLead && t.IsLead() {
		out = append(out, "P2 Lead")
	}
	return out
}

func details(rows []models.Transaction, withLead bool) []DetailRow {
	out := make([]DetailRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, DetailRow{Transaction: r, BillTypes: BillTypes(r, withLead), TotalRevenue: r.Revenue()})
	}
	sortDetails(out)
	return out
}

// newest first
func sortDetails(rows []DetailRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
}
