package sales

import (
	"time"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

type p1Origin struct {
	date       time.Time
	categories string
}

// LinkUpsells attaches to every UP P1 row the category label of the contact's
// earliest P1 purchase, provided the upsell is dated on or after it. The
// output has one entry per input row, in input order.
func LinkUpsells(rows []models.Transaction) []models.LinkedTransaction {
	first := make(map[string]p1Origin)
	for _, r := range rows {
		if r.Contact == "" || r.P1 <= 0 || !r.HasDate() {
			continue
		}
		// strict Before: on equal dates the first row seen keeps the slot
		if o, ok := first[r.Contact]; !ok || r.Date.Before(o.date) {
			first[r.Contact] = p1Origin{date: r.Date, categories: r.Categories}
		}
	}

	out := make([]models.LinkedTransaction, len(rows))
	for i, r := range rows {
		out[i] = models.LinkedTransaction{Transaction: r}
		if r.Contact == "" || r.UpP1 <= 0 || !r.HasDate() {
			continue
		}
		if o, ok := first[r.Contact]; ok && !r.Date.Before(o.date) {
			out[i].OriginCategories = o.categories
		}
	}
	return out
}
