package metrics

import (
	"fmt"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

const topCategoryCount = 15

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Charts struct {
	CategoryRevenue []Point `json:"category_revenue"`
	RevenueSplit    []Point `json:"revenue_split"`
	CustomerSplit   []Point `json:"customer_split"`
	DailySpend      []Point `json:"daily_spend"`
}

func BuildCharts(p sales.Period, ads models.AdsReport) Charts {
	c := Charts{
		CategoryRevenue: []Point{},
		RevenueSplit: []Point{
			{Label: "P1", Value: Round2(p.Summary.P1Revenue)},
			{Label: "UP P1", Value: Round2(p.Summary.UpP1Revenue)},
			{Label: "UP P2", Value: Round2(p.Summary.UpP2Revenue)},
		},
		CustomerSplit: []Point{
			{Label: "New Customers", Value: float64(p.Summary.NewCustomers)},
			{Label: "Old Customers", Value: float64(p.Summary.OldCustomers)},
		},
		DailySpend: make([]Point, 0, len(ads.DailySpend)),
	}
	for _, cat := range sales.TopCategories(p.Categories, topCategoryCount) {
		c.CategoryRevenue = append(c.CategoryRevenue, Point{Label: cat.Name, Value: Round2(cat.TotalRevenue)})
	}
	for _, d := range ads.DailySpend {
		u := d.Date.UTC()
		c.DailySpend = append(c.DailySpend, Point{Label: fmt.Sprintf("%d/%d", u.Day(), int(u.Month())), Value: d.Spend})
	}
	return c
}
