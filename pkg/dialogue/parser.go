package dialogue

import (
	"strconv"
	"strings"

	"storefront-bot/internal/constant"
	"storefront-bot/pkg/query"
)

// SearchQuery is a parsed product search. Price is nil when no range was given.
type SearchQuery struct {
	Keyword string
	Price   *query.PriceRange
}

// ParseSearch reads "<keyword> [min] [max]". Tokens after the third are ignored.
// Checks run in order: keyword, both prices present, min, max, max >= min.
func ParseSearch(input string) (SearchQuery, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return SearchQuery{}, &InputError{Reason: constant.TipEnterProductName}
	}

	q := SearchQuery{Keyword: fields[0]}
	if len(fields) == 1 {
		return q, nil
	}
	if len(fields) == 2 {
		return SearchQuery{}, &InputError{Reason: constant.TipMissingPrice}
	}

	price, err := ParsePriceRange(fields[1], fields[2])
	if err != nil {
		return SearchQuery{}, err
	}
	q.Price = &price
	return q, nil
}

// ParsePriceRange validates min, then max, then max >= min.
func ParsePriceRange(minToken, maxToken string) (query.PriceRange, error) {
	minPrice, ok := parsePrice(minToken)
	if !ok {
		return query.PriceRange{}, &InputError{Reason: constant.TipInvalidMinPrice}
	}
	maxPrice, ok := parsePrice(maxToken)
	if !ok {
		return query.PriceRange{}, &InputError{Reason: constant.TipInvalidMaxPrice}
	}
	if maxPrice < minPrice {
		return query.PriceRange{}, &InputError{Reason: constant.TipMaxBelowMin}
	}
	return query.PriceRange{Min: minPrice, Max: maxPrice}, nil
}

func parsePrice(token string) (int, bool) {
	v, err := strconv.Atoi(token)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseQuestion returns the whole trimmed argument as the keyword. The
// /question command passes only its first token, see QuestionCommandKeyword.
func ParseQuestion(input string) (string, error) {
	keyword := strings.TrimSpace(input)
	if keyword == "" {
		return "", &InputError{Reason: constant.TipEnterQuestionKeyword}
	}
	return keyword, nil
}

// QuestionCommandKeyword keeps the first token of a /question argument.
func QuestionCommandKeyword(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
