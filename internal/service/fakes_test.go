package service

import (
	"context"
	"errors"
	"sync"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/repository/contract"
	"storefront-bot/internal/repository/specification"
	"storefront-bot/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var errStore = errors.New("store unavailable")

// fakeStore backs every fake repository. Reads honour ByID, ByUsername and Pagination.
type fakeStore struct {
	mu        sync.Mutex
	products  []*entity.Product
	shops     []*entity.Shop
	questions []*entity.Question
	admins    []*entity.Admin
	failReads bool
	hotCalls  []uuid.UUID
}

type specFilter struct {
	id       *uuid.UUID
	username *string
	page     *specification.Pagination
}

func parseSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.ByUsername:
			name := v.Username
			f.username = &name
		case specification.Pagination:
			p := v
			f.page = &p
		}
	}
	return f
}

func paginate[T any](items []T, p *specification.Pagination) []T {
	if p == nil {
		return items
	}
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{store: f.store}
}

type fakeUoW struct{ store *fakeStore }

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error                   { return nil }
func (u *fakeUoW) Rollback() error                 { return nil }

func (u *fakeUoW) ProductRepository() contract.ProductRepository   { return &fakeProductRepo{u.store} }
func (u *fakeUoW) ShopRepository() contract.ShopRepository         { return &fakeShopRepo{u.store} }
func (u *fakeUoW) QuestionRepository() contract.QuestionRepository { return &fakeQuestionRepo{u.store} }
func (u *fakeUoW) AdminRepository() contract.AdminRepository       { return &fakeAdminRepo{u.store} }

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products = append(r.s.products, &cp)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.products {
		if existing.Id == p.Id {
			cp := *p
			r.s.products[i] = &cp
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.products[:0]
	for _, p := range r.s.products {
		if p.Id != id {
			out = append(out, p)
		}
	}
	r.s.products = out
	return nil
}

func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errStore
	}
	f := parseSpecs(specs)
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if f.id != nil && p.Id != *f.id {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return paginate(out, f.page), nil
}

func (r *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

func (r *fakeProductRepo) IncrementHot(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.hotCalls = append(r.s.hotCalls, id)
	for _, p := range r.s.products {
		if p.Id == id {
			p.HotCount++
		}
	}
	return nil
}

type fakeShopRepo struct{ s *fakeStore }

func (r *fakeShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *shop
	r.s.shops = append(r.s.shops, &cp)
	return nil
}

func (r *fakeShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.shops {
		if existing.Id == shop.Id {
			cp := *shop
			r.s.shops[i] = &cp
		}
	}
	return nil
}

func (r *fakeShopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.shops[:0]
	for _, s := range r.s.shops {
		if s.Id != id {
			out = append(out, s)
		}
	}
	r.s.shops = out
	return nil
}

func (r *fakeShopRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeShopRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errStore
	}
	f := parseSpecs(specs)
	out := make([]*entity.Shop, 0)
	for _, s := range r.s.shops {
		if f.id != nil && s.Id != *f.id {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return paginate(out, f.page), nil
}

func (r *fakeShopRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.shops)), nil
}

type fakeQuestionRepo struct{ s *fakeStore }

func (r *fakeQuestionRepo) Create(ctx context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *q
	r.s.questions = append(r.s.questions, &cp)
	return nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.questions {
		if existing.Id == q.Id {
			cp := *q
			r.s.questions[i] = &cp
		}
	}
	return nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.questions[:0]
	for _, q := range r.s.questions {
		if q.Id != id {
			out = append(out, q)
		}
	}
	r.s.questions = out
	return nil
}

func (r *fakeQuestionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errStore
	}
	f := parseSpecs(specs)
	out := make([]*entity.Question, 0)
	for _, q := range r.s.questions {
		if f.id != nil && q.Id != *f.id {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return paginate(out, f.page), nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.questions)), nil
}

type fakeAdminRepo struct{ s *fakeStore }

func (r *fakeAdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.admins = append(r.s.admins, &cp)
	return nil
}

func (r *fakeAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f := parseSpecs(specs)
	for _, a := range r.s.admins {
		if f.username != nil && a.Username != *f.username {
			continue
		}
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

// recordingAudit captures audit calls.
type recordingAudit struct {
	mu      sync.Mutex
	changes []string
	logins  []string
}

func (a *recordingAudit) PublishCatalogChanged(ctx context.Context, entityType, action string, entityId uuid.UUID, actor string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.changes = append(a.changes, entityType+":"+action+":"+actor)
}

func (a *recordingAudit) PublishAdminLogin(ctx context.Context, adminId uuid.UUID, username string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logins = append(a.logins, username)
}
