package service

import (
	"context"
	"errors"
	"fmt"

	"referral_backend/internal/model"
	"referral_backend/internal/repository"

	"github.com/google/uuid"
)

type DashboardService struct {
	users     UserRepository
	referrals ReferralRepository
}

func NewDashboardService(users UserRepository, referrals ReferralRepository) *DashboardService {
	return &DashboardService{
		users:     users,
		referrals: referrals,
	}
}

func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*model.DashboardSummary, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	total, err := s.referrals.CountReferrals(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count referrals: %w", err)
	}

	converted, err := s.referrals.CountReferrals(ctx, userID, []model.ReferralStatus{model.ReferralConverted})
	if err != nil {
		return nil, fmt.Errorf("failed to count converted referrals: %w", err)
	}

	return &model.DashboardSummary{
		Name:               user.Name,
		Email:              user.Email,
		ReferralCode:       user.ReferralCode,
		TotalReferrals:     total,
		ConvertedReferrals: converted,
		Credits:            user.Credits,
	}, nil
}
