package mapper

import (
	"storefront-bot/internal/entity"
	"storefront-bot/internal/model"
)

type ShopMapper struct{}

func NewShopMapper() *ShopMapper {
	return &ShopMapper{}
}

func (m *ShopMapper) ToEntity(model *model.Shop) *entity.Shop {
	if model == nil {
		return nil
	}
	return &entity.Shop{
		Id:           model.Id,
		Name:         model.Name,
		Region:       model.Region,
		District:     model.District,
		Address:      model.Address,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Phone:        model.Phone,
		OpeningHours: model.OpeningHours,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *ShopMapper) ToModel(entity *entity.Shop) *model.Shop {
	if entity == nil {
		return nil
	}
	return &model.Shop{
		Id:           entity.Id,
		Name:         entity.Name,
		Region:       entity.Region,
		District:     entity.District,
		Address:      entity.Address,
		Latitude:     entity.Latitude,
		Longitude:    entity.Longitude,
		Phone:        entity.Phone,
		OpeningHours: entity.OpeningHours,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *ShopMapper) ToEntities(models []*model.Shop) []*entity.Shop {
	entities := make([]*entity.Shop, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
