package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/repository"
	"alugo-backend/internal/security"
)

type authService struct {
	userRepo     repository.UserRepository
	shopRepo     repository.ShopRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, shopRepo repository.ShopRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		userRepo:     userRepo,
		shopRepo:     shopRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Signup(ctx context.Context, shopName, name, email, phone, password string) (*domain.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", domain.ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("hash password: %w", err)
	}

	shop := &domain.Shop{Name: shopName, Phone: phone}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		ShopID:       shop.ID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", domain.ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokenManager.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", domain.ErrUnauthorized
		}
		return "", "", err
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokenManager.GenerateAccessToken(user.ID, user.ShopID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokenManager.GenerateRefreshToken(user.ID, user.ShopID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
