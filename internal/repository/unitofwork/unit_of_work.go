package unitofwork

import (
	"context"

	"storefront-bot/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	ShopRepository() contract.ShopRepository
	QuestionRepository() contract.QuestionRepository
	AdminRepository() contract.AdminRepository
}
