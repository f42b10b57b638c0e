package query

import (
	"sort"

	"storefront-bot/internal/entity"
)

// DefaultTopN is how many products the "top" flow shows.
const DefaultTopN = 5

// TopN returns up to n products ordered by HotCount descending. Ties keep snapshot order.
// The input slice is not reordered.
func TopN(products []*entity.Product, n int) []*entity.Product {
	ranked := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HotCount > ranked[j].HotCount
	})
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
