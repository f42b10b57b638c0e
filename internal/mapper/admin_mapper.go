package mapper

import (
	"storefront-bot/internal/entity"
	"storefront-bot/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(model *model.Admin) *entity.Admin {
	if model == nil {
		return nil
	}
	return &entity.Admin{
		Id:           model.Id,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}
}

func (m *AdminMapper) ToModel(entity *entity.Admin) *model.Admin {
	if entity == nil {
		return nil
	}
	return &model.Admin{
		Id:           entity.Id,
		Username:     entity.Username,
		PasswordHash: entity.PasswordHash,
		CreatedAt:    entity.CreatedAt,
	}
}
