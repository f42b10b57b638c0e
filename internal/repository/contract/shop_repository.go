package contract

import (
	"context"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/repository/specification"

	"github.com/google/uuid"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
