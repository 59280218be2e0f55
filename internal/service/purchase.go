package service

import (
	"context"
	"fmt"
	"time"

	"referral_backend/internal/model"

	"github.com/google/uuid"
)

type PurchaseService struct {
	purchases PurchaseRepository
	referrals ReferralRepository
}

func NewPurchaseService(purchases PurchaseRepository, referrals ReferralRepository) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		referrals: referrals,
	}
}

// Create records a purchase for the user. If it is the user's first
// purchase ever and a pending referral names them as the referred
// party, that referral converts and both sides receive ReferralReward
// credits. The first-purchase gate means repeated purchases can never
// trigger a second reward cycle. Returns the purchase and whether a
// reward was applied.
func (s *PurchaseService) Create(ctx context.Context, userID uuid.UUID, amount float64) (*model.Purchase, bool, error) {
	if amount <= 0 {
		return nil, false, ErrInvalidAmount
	}

	purchase := &model.Purchase{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	if err := s.purchases.CreatePurchase(ctx, purchase); err != nil {
		return nil, false, fmt.Errorf("failed to create purchase: %w", err)
	}

	count, err := s.purchases.CountPurchases(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count purchases: %w", err)
	}
	if count != 1 {
		return purchase, false, nil
	}

	rewarded, err := s.referrals.ConvertPendingReferral(ctx, userID, ReferralReward)
	if err != nil {
		return nil, false, fmt.Errorf("failed to convert referral: %w", err)
	}

	return purchase, rewarded, nil
}
