package metrics

import (
	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

type cardKind int

const (
	kindCount cardKind = iota
	kindCurrency
	kindROAS
	kindRate
	kindPercent
)

type Card struct {
	Label           string   `json:"label"`
	Value           float64  `json:"value"`
	Display         string   `json:"display"`
	Previous        *float64 `json:"previous,omitempty"`
	PreviousDisplay string   `json:"previous_display,omitempty"`
	Growth          *Growth  `json:"growth,omitempty"`
}

type Overview struct {
	Funnel  []Card `json:"funnel"`
	Ads     []Card `json:"ads"`
	Sales   []Card `json:"sales"`
	Revenue []Card `json:"revenue"`
	Bills   []Card `json:"bills"`
}

// Inputs pairs one period's ad totals with its sales summary.
type Inputs struct {
	Ads     models.Insights
	Summary models.PeriodSummary
}

// BuildOverview assembles the stat cards. prev is nil outside comparison mode.
func BuildOverview(cur Inputs, prev *Inputs) Overview {
	pick := func(f func(Inputs) float64) (float64, *float64) {
		if prev == nil {
			return f(cur), nil
		}
		p := f(*prev)
		return f(cur), &p
	}
	card := func(label string, kind cardKind, f func(Inputs) float64) Card {
		v, p := pick(f)
		return newCard(label, kind, v, p)
	}

	spend := func(in Inputs) float64 { return in.Ads.Spend }
	revenue := func(in Inputs) float64 { return in.Summary.TotalRevenue }
	purchases := func(in Inputs) float64 { return in.Ads.Purchases }

	return Overview{
		Funnel: []Card{
			card("Ad Spend", kindCurrency, spend),
			card("Total Revenue", kindCurrency, revenue),
			card("ROAS", kindROAS, func(in Inputs) float64 { return ROAS(revenue(in), spend(in)) }),
			card("Purchases", kindCount, purchases),
			card("Cost Per Purchase", kindCurrency, func(in Inputs) float64 { return CostPerPurchase(spend(in), purchases(in)) }),
		},
		Ads: []Card{
			newCard("Impressions", kindCount, cur.Ads.Impressions, nil),
			newCard("Messaging Started", kindCount, cur.Ads.MessagingConversations, nil),
			newCard("Avg. CPM", kindCurrency, cur.Ads.CPM, nil),
			newCard("Avg. CTR", kindPercent, cur.Ads.CTR, nil),
		},
		Sales: []Card{
			card("Total Bills", kindCount, func(in Inputs) float64 { return float64(in.Summary.TotalBills) }),
			card("Total Sales Revenue", kindCurrency, revenue),
			card("Total Customers", kindCount, func(in Inputs) float64 { return float64(in.Summary.TotalCustomers) }),
			card("New Customers", kindCount, func(in Inputs) float64 { return float64(in.Summary.NewCustomers) }),
		},
		Revenue: []Card{
			card("P1 Revenue", kindCurrency, func(in Inputs) float64 { return in.Summary.P1Revenue }),
			card("UP P1 Revenue", kindCurrency, func(in Inputs) float64 { return in.Summary.UpP1Revenue }),
			card("UP P2 Revenue", kindCurrency, func(in Inputs) float64 { return in.Summary.UpP2Revenue }),
		},
		Bills: []Card{
			card("P1 Bills", kindCount, func(in Inputs) float64 { return float64(in.Summary.P1Bills) }),
			card("P2 Leads", kindCount, func(in Inputs) float64 { return float64(in.Summary.P2Leads) }),
			card("UP P1 Bills", kindCount, func(in Inputs) float64 { return float64(in.Summary.UpP1Bills) }),
			card("UP P2 Bills", kindCount, func(in Inputs) float64 { return float64(in.Summary.UpP2Bills) }),
			card("P1 → UP P1 Rate", kindRate, func(in Inputs) float64 { return P1ToUpP1Rate(in.Summary) }),
			card("P2 Conversion Rate", kindRate, func(in Inputs) float64 { return P2ConversionRate(in.Summary) }),
		},
	}
}

func newCard(label string, kind cardKind, v float64, prev *float64) Card {
	c := Card{Label: label, Value: roundFor(kind, v), Display: display(kind, v)}
	if prev != nil {
		g := CalculateGrowth(v, *prev)
		p := roundFor(kind, *prev)
		c.Previous = &p
		c.PreviousDisplay = display(kind, *prev)
		c.Growth = &g
	}
	return c
}

func display(kind cardKind, v float64) string {
	switch kind {
	case kindCurrency:
		return FormatCurrency(v)
	case kindROAS:
		return FormatROAS(v)
	case kindRate:
		return FormatRate(v)
	case kindPercent:
		return FormatPercent2(v)
	default:
		return FormatNumber(v)
	}
}

func roundFor(kind cardKind, v float64) float64 {
	if kind == kindROAS || kind == kindRate {
		return Round3(v)
	}
	return Round2(v)
}
