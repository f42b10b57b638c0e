package dialogue

import (
	"fmt"
	"strconv"

	"storefront-bot/internal/constant"
	"storefront-bot/internal/entity"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/query"
)

// Formatter renders records as outbound messages, one per record, in input order.
type Formatter struct {
	logger logger.ILogger
}

func NewFormatter(log logger.ILogger) *Formatter {
	return &Formatter{logger: log}
}

// CategoryLabel maps a 1-based category type to its label. ok is false when
// the type is outside the known range; the fallback label is returned then.
func CategoryLabel(categoryType int) (label string, ok bool) {
	if categoryType < 1 || categoryType > len(constant.CategoryLabels) {
		return constant.CategoryUnknownLabel, false
	}
	return constant.CategoryLabels[categoryType-1], true
}

func (f *Formatter) Products(chatID int64, products []*entity.Product) []Outbound {
	out := make([]Outbound, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		label, ok := CategoryLabel(p.CategoryType)
		if !ok {
			f.logger.Warn("Dialogue", "Product has unknown category type", map[string]interface{}{
				"product_id":    p.Id.String(),
				"category_type": p.CategoryType,
			})
		}
		out = append(out, Outbound{
			ChatID: chatID,
			Kind:   OutboundText,
			Text:   fmt.Sprintf(constant.ProductMessageFormat, p.Name, p.Model, p.PriceHKD, p.Description, label),
		})
	}
	return out
}

func (f *Formatter) Questions(chatID int64, questions []*entity.Question) []Outbound {
	out := make([]Outbound, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}
		out = append(out, Outbound{
			ChatID: chatID,
			Kind:   OutboundText,
			Text:   fmt.Sprintf(constant.QuestionMessageFormat, q.Question, q.Answer),
		})
	}
	return out
}

// Shops emits a details message followed by a map pin for every shop.
func (f *Formatter) Shops(chatID int64, shops []*entity.Shop) []Outbound {
	out := make([]Outbound, 0, len(shops)*2)
	for _, s := range shops {
		if s == nil {
			continue
		}
		out = append(out,
			Outbound{
				ChatID: chatID,
				Kind:   OutboundText,
				Text:   fmt.Sprintf(constant.ShopMessageFormat, s.Name, s.Address, s.Phone, s.OpeningHours),
			},
			Outbound{
				ChatID:    chatID,
				Kind:      OutboundLocation,
				Location:  query.Point{Latitude: s.Latitude, Longitude: s.Longitude},
				LinkLabel: constant.MapLinkLabel,
				LinkURL:   MapURL(s.Latitude, s.Longitude),
			},
		)
	}
	return out
}

// TopProducts renders the ranking as a single message with one line per product.
func (f *Formatter) TopProducts(chatID int64, products []*entity.Product) Outbound {
	text := constant.TopProductsHeader
	rank := 0
	for _, p := range products {
		if p == nil {
			continue
		}
		rank++
		text += fmt.Sprintf(constant.TopProductLineFormat, rank, p.Name, p.HotCount)
	}
	return Outbound{ChatID: chatID, Kind: OutboundText, Text: text}
}

func MapURL(lat, lon float64) string {
	return fmt.Sprintf(constant.MapLinkFormat, formatCoord(lat), formatCoord(lon))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
