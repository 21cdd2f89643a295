package sales

import (
	"sort"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

// CategoryDetails aggregates revenue-bearing rows per category. A row listing
// n categories contributes 1/n of each revenue figure to each of them; bill
// and new-customer counters are whole-row counts. Rows without a category
// are left out.
func CategoryDetails(rows []models.Transaction) []models.CategoryAgg {
	index := make(map[string]int)
	var cats []models.CategoryAgg
	for _, row := range rows {
		if row.Revenue() <= 0 {
			continue
		}
		names := ParseCategories(row.Categories)
		if len(names) == 0 {
			continue
		}
		n := float64(len(names))
		p1, upP1, upP2 := row.P1/n, row.UpP1/n, row.UpP2/n
		for _, name := range names {
			i, ok := index[name]
			if !ok {
				i = len(cats)
				index[name] = i
				cats = append(cats, models.CategoryAgg{Name: name})
			}
			c := &cats[i]
			c.P1Revenue += p1
			c.UpP1Revenue += upP1
			c.UpP2Revenue += upP2
			c.TotalRevenue += p1 + upP1 + upP2
			if row.P1 > 0 {
				c.P1Bills++
			}
			if row.UpP1 > 0 {
				c.UpP1Bills++
			}
			if row.UpP2 > 0 {
				c.UpP2Bills++
			}
			if row.NewCustomer {
				c.NewCustomers++
			}
			c.Transactions = append(c.Transactions, row)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].TotalRevenue > cats[j].TotalRevenue })
	return cats
}

func FindCategory(cats []models.CategoryAgg, name string) (models.CategoryAgg, bool) {
	for _, c := range cats {
		if c.Name == name {
			return c, true
		}
	}
	return models.CategoryAgg{}, false
}

// TopCategories returns at most n categories; cats is already sorted.
func TopCategories(cats []models.CategoryAgg, n int) []models.CategoryAgg {
	if len(cats) <= n {
		return cats
	}
	return cats[:n]
}
