package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
	"carrental-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type authService struct {
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password, dateOfBirth, licenseIssueDate string) (*domain.User, string, error) {
	if _, err := utils.ParseDate(dateOfBirth); err != nil {
		return nil, "", fmt.Errorf("date of birth: %w", err)
	}
	if _, err := utils.ParseDate(licenseIssueDate); err != nil {
		return nil, "", fmt.Errorf("license issue date: %w", err)
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:            email,
		PasswordHash:     string(hash),
		Name:             name,
		Role:             domain.RoleUser,
		DateOfBirth:      dateOfBirth,
		LicenseIssueDate: licenseIssueDate,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) UpdateProfile(ctx context.Context, actor domain.Principal, name, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" && email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokenManager.Generate(user.ID, user.Email, string(user.Role))
}
