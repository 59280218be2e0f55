package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"referral_backend/internal/model"
	"referral_backend/internal/repository"

	"github.com/google/uuid"
)

type ReferralService struct {
	users     UserRepository
	referrals ReferralRepository
}

func NewReferralService(users UserRepository, referrals ReferralRepository) *ReferralService {
	return &ReferralService{
		users:     users,
		referrals: referrals,
	}
}

// ApplyCode links the acting user to the owner of code and records a
// pending referral edge. Each user may apply a code at most once.
// Returns the referrer's display name.
func (s *ReferralService) ApplyCode(ctx context.Context, userID uuid.UUID, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", ErrInvalidCode
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	referrer, err := s.users.GetUserByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCode
		}
		return "", fmt.Errorf("failed to get user by referral code: %w", err)
	}

	if referrer.ID == user.ID {
		return "", ErrSelfReferral
	}

	if user.ReferredBy != nil {
		return "", ErrCodeAlreadyUsed
	}

	if err := s.users.SetReferredBy(ctx, user.ID, referrer.ID); err != nil {
		return "", fmt.Errorf("failed to set referred_by: %w", err)
	}

	referral := &model.Referral{
		ID:         uuid.New(),
		ReferrerID: referrer.ID,
		ReferredID: user.ID,
		Status:     model.ReferralPending,
		CreatedAt:  time.Now(),
	}
	if err := s.referrals.CreateReferral(ctx, referral); err != nil {
		if errors.Is(err, repository.ErrReferralExists) {
			return "", ErrCodeAlreadyUsed
		}
		return "", fmt.Errorf("failed to create referral: %w", err)
	}

	return referrer.DisplayName(), nil
}

func (s *ReferralService) Overview(ctx context.Context, userID uuid.UUID) (*model.ReferralOverview, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entries, err := s.referrals.GetReferralsByReferrer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}

	return &model.ReferralOverview{
		TotalReferrals: len(entries),
		Credits:        user.Credits,
		Referrals:      entries,
	}, nil
}
