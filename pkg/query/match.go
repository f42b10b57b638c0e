package query

import "storefront-bot/internal/entity"

// PriceRange is an inclusive HKD price window.
type PriceRange struct {
	Min int
	Max int
}

func (r PriceRange) Includes(price int) bool {
	return price >= r.Min && price <= r.Max
}

// NameMatch returns the products whose name contains keyword, in snapshot order.
func NameMatch(products []*entity.Product, keyword string) []*entity.Product {
	result := make([]*entity.Product, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		if Contains(p.Name, keyword) {
			result = append(result, p)
		}
	}
	return result
}

// NameAndPriceMatch narrows NameMatch to products priced inside r.
func NameAndPriceMatch(products []*entity.Product, keyword string, r PriceRange) []*entity.Product {
	result := make([]*entity.Product, 0)
	for _, p := range NameMatch(products, keyword) {
		if r.Includes(p.PriceHKD) {
			result = append(result, p)
		}
	}
	return result
}

// QuestionMatch returns the FAQ entries whose question text contains keyword.
func QuestionMatch(questions []*entity.Question, keyword string) []*entity.Question {
	result := make([]*entity.Question, 0)
	for _, q := range questions {
		if q == nil {
			continue
		}
		if Contains(q.Question, keyword) {
			result = append(result, q)
		}
	}
	return result
}
