package contract

import (
	"context"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/repository/specification"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
}
