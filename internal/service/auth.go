package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"referral_backend/internal/model"
	"referral_backend/internal/repository"
	"referral_backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// codeAttempts bounds retries when a generated referral code collides
// with the unique index.
const codeAttempts = 5

type AuthResult struct {
	Token        string
	ReferralCode string
}

type AuthService struct {
	users  UserRepository
	tokens *auth.TokenAuth
}

func NewAuthService(users UserRepository, tokens *auth.TokenAuth) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func newReferralCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Credits:      0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		user.ReferralCode = newReferralCode()
		err = s.users.CreateUser(ctx, user)
		if errors.Is(err, repository.ErrCodeTaken) {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:        token,
		ReferralCode: user.ReferralCode,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:        token,
		ReferralCode: user.ReferralCode,
	}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
