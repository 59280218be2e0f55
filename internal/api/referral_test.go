package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referral_backend/internal/model"
	"referral_backend/internal/service"
	"referral_backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubReferralService struct {
	applyCode func(ctx context.Context, userID uuid.UUID, code string) (string, error)
	overview  func(ctx context.Context, userID uuid.UUID) (*model.ReferralOverview, error)
}

func (s *stubReferralService) ApplyCode(ctx context.Context, userID uuid.UUID, code string) (string, error) {
	return s.applyCode(ctx, userID, code)
}

func (s *stubReferralService) Overview(ctx context.Context, userID uuid.UUID) (*model.ReferralOverview, error) {
	return s.overview(ctx, userID)
}

func newReferralTestRouter(rs service.ReferralServiceI, tokens *auth.TokenAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewReferralRoutes(router.Group("/api"), rs, tokens)
	return router
}

func TestReferralRoutes_ApplyCode(t *testing.T) {
	tokens := auth.NewTokenAuth("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.IssueToken(userID, "b@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"Invalid code", service.ErrInvalidCode, http.StatusBadRequest},
		{"Self referral", service.ErrSelfReferral, http.StatusBadRequest},
		{"Already used", service.ErrCodeAlreadyUsed, http.StatusBadRequest},
		{"User missing", service.ErrUserNotFound, http.StatusNotFound},
		{"Store failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &stubReferralService{
				applyCode: func(ctx context.Context, id uuid.UUID, code string) (string, error) {
					return "", tt.serviceErr
				},
			}
			router := newReferralTestRouter(rs, tokens)

			w := postJSON(router, "/api/referrals/use", gin.H{"code": "ABCD1234"}, token)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("Successful apply", func(t *testing.T) {
		rs := &stubReferralService{
			applyCode: func(ctx context.Context, id uuid.UUID, code string) (string, error) {
				assert.Equal(t, userID, id)
				assert.Equal(t, "ABCD1234", code)
				return "Alice", nil
			},
		}
		router := newReferralTestRouter(rs, tokens)

		w := postJSON(router, "/api/referrals/use", gin.H{"code": "ABCD1234"}, token)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Alice", body["referrer"])
	})

	t.Run("Missing code", func(t *testing.T) {
		router := newReferralTestRouter(&stubReferralService{}, tokens)

		w := postJSON(router, "/api/referrals/use", gin.H{}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReferralRoutes_Mine(t *testing.T) {
	tokens := auth.NewTokenAuth("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.IssueToken(userID, "a@example.com")
	assert.NoError(t, err)

	rs := &stubReferralService{
		overview: func(ctx context.Context, id uuid.UUID) (*model.ReferralOverview, error) {
			return &model.ReferralOverview{
				TotalReferrals: 1,
				Credits:        2,
				Referrals: []*model.ReferralEntry{
					{Name: "B", Email: "b@example.com", Status: model.ReferralPending, CreatedAt: time.Now()},
				},
			}, nil
		},
	}
	router := newReferralTestRouter(rs, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/mine", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalReferrals"])
	assert.Equal(t, float64(2), body["credits"])

	referrals, ok := body["referrals"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, referrals, 1)
}
