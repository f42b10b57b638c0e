package implementation

import (
	"context"
	"errors"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/mapper"
	"storefront-bot/internal/model"
	"storefront-bot/internal/repository/contract"
	"storefront-bot/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShopMapper
}

func NewShopRepository(db *gorm.DB) contract.ShopRepository {
	return &ShopRepositoryImpl{
		db:     db,
		mapper: mapper.NewShopMapper(),
	}
}

func (r *ShopRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShopRepositoryImpl) Create(ctx context.Context, shop *entity.Shop) error {
	m := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShopRepositoryImpl) Update(ctx context.Context, shop *entity.Shop) error {
	m := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShopRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shop{}, id).Error
}

func (r *ShopRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error) {
	var m model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShopRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error) {
	var models []*model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ShopRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Shop{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
