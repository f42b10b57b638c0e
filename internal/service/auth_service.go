// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"storefront-bot/internal/dto"
	"storefront-bot/internal/entity"
	"storefront-bot/internal/repository/specification"
	"storefront-bot/internal/repository/unitofwork"
	"storefront-bot/pkg/audit"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// EnsureAdmin creates the account when the username is free. It never resets an existing password.
	EnsureAdmin(ctx context.Context, username, password string) (created bool, err error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      audit.Publisher
	secret     []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, auditPublisher audit.Publisher, secret string, tokenTTL time.Duration) IAuthService {
	if secret == "" {
		secret = "default_secret"
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authService{
		uowFactory: uowFactory,
		audit:      auditPublisher,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"username": admin.Username,
		"exp":      expiresAt.Unix(),
		"iat":      s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	s.audit.PublishAdminLogin(ctx, admin.Id, admin.Username)
	return &dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, errors.New("admin username and password are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := entity.Admin{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := uow.AdminRepository().Create(ctx, &admin); err != nil {
		return false, err
	}
	return true, nil
}
