// FILE: internal/mapper/product_mapper.go
// Mapper for Product entity <-> model conversion
package mapper

import (
	"storefront-bot/internal/entity"
	"storefront-bot/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(model *model.Product) *entity.Product {
	if model == nil {
		return nil
	}
	return &entity.Product{
		Id:           model.Id,
		Name:         model.Name,
		Brand:        model.Brand,
		Model:        model.Model,
		Description:  model.Description,
		PriceHKD:     model.PriceHKD,
		CategoryType: model.CategoryType,
		HotCount:     model.HotCount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(entity *entity.Product) *model.Product {
	if entity == nil {
		return nil
	}
	return &model.Product{
		Id:           entity.Id,
		Name:         entity.Name,
		Brand:        entity.Brand,
		Model:        entity.Model,
		Description:  entity.Description,
		PriceHKD:     entity.PriceHKD,
		CategoryType: entity.CategoryType,
		HotCount:     entity.HotCount,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
