package sales

import (
	"sort"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

type pathKey struct{ from, to string }

// PathKey is the display key of an upsell path.
func PathKey(from, to string) string { return from + " -> " + to }

// UpsellPaths groups linked UP P1 rows by (origin category, destination
// category). Each row's UP P1 amount is split evenly over every pair it
// produces. Sorted by revenue descending, discovery order on ties.
func UpsellPaths(linked []models.LinkedTransaction) []models.UpsellPath {
	index := make(map[pathKey]int)
	var paths []models.UpsellPath
	for _, row := range linked {
		if row.UpP1 <= 0 || !row.Linked() {
			continue
		}
		from := ParseCategories(row.OriginCategories)
		to := ParseCategories(row.Categories)
		if len(from) == 0 || len(to) == 0 {
			continue
		}
		portion := row.UpP1 / float64(len(from)*len(to))
		for _, f := range from {
			for _, t := range to {
				k := pathKey{from: f, to: t}
				i, ok := index[k]
				if !ok {
					i = len(paths)
					index[k] = i
					paths = append(paths, models.UpsellPath{From: f, To: t})
				}
				p := &paths[i]
				p.Count++
				p.UpP1Revenue += portion
				p.Transactions = append(p.Transactions, row)
			}
		}
	}
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].UpP1Revenue > paths[j].UpP1Revenue })
	return paths
}

func FindPath(paths []models.UpsellPath, from, to string) (models.UpsellPath, bool) {
	for _, p := range paths {
		if p.From == from && p.To == to {
			return p, true
		}
	}
	return models.UpsellPath{}, false
}
