package contract

import (
	"context"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// IncrementHot bumps hot_count by one in a single statement. A missing id is not an error.
	IncrementHot(ctx context.Context, id uuid.UUID) error
}
