package mapper

import (
	"storefront-bot/internal/dto"
	"storefront-bot/internal/entity"
	"storefront-bot/pkg/dialogue"
)

func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	label, _ := dialogue.CategoryLabel(p.CategoryType)
	return &dto.ProductResponse{
		Id:            p.Id,
		Name:          p.Name,
		Brand:         p.Brand,
		Model:         p.Model,
		Description:   p.Description,
		PriceHKD:      p.PriceHKD,
		CategoryType:  p.CategoryType,
		CategoryLabel: label,
		HotCount:      p.HotCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if p != nil {
			out = append(out, ToProductResponse(p))
		}
	}
	return out
}

func ToShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		Id:           s.Id,
		Name:         s.Name,
		Region:       s.Region,
		District:     s.District,
		Address:      s.Address,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Phone:        s.Phone,
		OpeningHours: s.OpeningHours,
		MapURL:       dialogue.MapURL(s.Latitude, s.Longitude),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func ToShopResponses(shops []*entity.Shop) []*dto.ShopResponse {
	out := make([]*dto.ShopResponse, 0, len(shops))
	for _, s := range shops {
		if s != nil {
			out = append(out, ToShopResponse(s))
		}
	}
	return out
}

func ToQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Id:        q.Id,
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func ToQuestionResponses(questions []*entity.Question) []*dto.QuestionResponse {
	out := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		if q != nil {
			out = append(out, ToQuestionResponse(q))
		}
	}
	return out
}
