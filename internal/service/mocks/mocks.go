package mocks

import (
	"context"

	"referral_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SetReferredBy(ctx context.Context, userID, referrerID uuid.UUID) error {
	args := m.Called(ctx, userID, referrerID)
	return args.Error(0)
}

type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) CreateReferral(ctx context.Context, referral *model.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*model.ReferralEntry, error) {
	args := m.Called(ctx, referrerID)
	if entries := args.Get(0); entries != nil {
		return entries.([]*model.ReferralEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReferralRepository) CountReferrals(ctx context.Context, referrerID uuid.UUID, statuses []model.ReferralStatus) (int, error) {
	args := m.Called(ctx, referrerID, statuses)
	return args.Int(0), args.Error(1)
}

func (m *MockReferralRepository) ConvertPendingReferral(ctx context.Context, referredID uuid.UUID, reward int) (bool, error) {
	args := m.Called(ctx, referredID, reward)
	return args.Bool(0), args.Error(1)
}

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, purchase *model.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) CountPurchases(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
