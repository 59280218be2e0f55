package service

import (
	"context"
	"testing"

	"referral_backend/internal/model"
	"referral_backend/internal/repository"
	"referral_backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardService_Summary(t *testing.T) {
	userID := uuid.New()

	t.Run("User missing", func(t *testing.T) {
		mockUsers := &mocks.MockUserRepository{}
		mockReferrals := &mocks.MockReferralRepository{}
		mockUsers.On("GetUserByID", mock.Anything, userID).
			Return(nil, repository.ErrNotFound)

		service := NewDashboardService(mockUsers, mockReferrals)

		_, err := service.Summary(context.Background(), userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Counts split by status", func(t *testing.T) {
		mockUsers := &mocks.MockUserRepository{}
		mockReferrals := &mocks.MockReferralRepository{}
		mockUsers.On("GetUserByID", mock.Anything, userID).
			Return(&model.User{
				ID:           userID,
				Name:         "Alice",
				Email:        "a@example.com",
				ReferralCode: "ABCD1234",
				Credits:      6,
			}, nil)
		mockReferrals.On("CountReferrals", mock.Anything, userID, []model.ReferralStatus(nil)).
			Return(3, nil)
		mockReferrals.On("CountReferrals", mock.Anything, userID, []model.ReferralStatus{model.ReferralConverted}).
			Return(1, nil)

		service := NewDashboardService(mockUsers, mockReferrals)

		summary, err := service.Summary(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", summary.Name)
		assert.Equal(t, "a@example.com", summary.Email)
		assert.Equal(t, "ABCD1234", summary.ReferralCode)
		assert.Equal(t, 3, summary.TotalReferrals)
		assert.Equal(t, 1, summary.ConvertedReferrals)
		assert.Equal(t, 6, summary.Credits)

		mockReferrals.AssertExpectations(t)
	})
}
