package service

import (
	"context"
	"errors"

	"referral_backend/internal/model"

	"github.com/google/uuid"
)

// ReferralReward is credited to both referrer and referred when a
// pending referral converts.
const ReferralReward = 2

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCode        = errors.New("invalid referral code")
	ErrSelfReferral       = errors.New("you cannot refer yourself")
	ErrCodeAlreadyUsed    = errors.New("you already used a referral code")
	ErrInvalidAmount      = errors.New("invalid purchase amount")
)

type Service struct {
	*AuthService
	*ReferralService
	*PurchaseService
	*DashboardService
}

func NewService(auth *AuthService, referral *ReferralService, purchase *PurchaseService, dashboard *DashboardService) *Service {
	return &Service{
		AuthService:      auth,
		ReferralService:  referral,
		PurchaseService:  purchase,
		DashboardService: dashboard,
	}
}

type AuthServiceI interface {
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type ReferralServiceI interface {
	ApplyCode(ctx context.Context, userID uuid.UUID, code string) (string, error)
	Overview(ctx context.Context, userID uuid.UUID) (*model.ReferralOverview, error)
}

type PurchaseServiceI interface {
	Create(ctx context.Context, userID uuid.UUID, amount float64) (*model.Purchase, bool, error)
}

type DashboardServiceI interface {
	Summary(ctx context.Context, userID uuid.UUID) (*model.DashboardSummary, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	SetReferredBy(ctx context.Context, userID, referrerID uuid.UUID) error
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *model.Referral) error
	GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*model.ReferralEntry, error)
	CountReferrals(ctx context.Context, referrerID uuid.UUID, statuses []model.ReferralStatus) (int, error)
	ConvertPendingReferral(ctx context.Context, referredID uuid.UUID, reward int) (bool, error)
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *model.Purchase) error
	CountPurchases(ctx context.Context, userID uuid.UUID) (int, error)
}
