package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"referral_backend/internal/model"
	"referral_backend/internal/service"
	"referral_backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPurchaseService struct {
	create func(ctx context.Context, userID uuid.UUID, amount float64) (*model.Purchase, bool, error)
}

func (s *stubPurchaseService) Create(ctx context.Context, userID uuid.UUID, amount float64) (*model.Purchase, bool, error) {
	return s.create(ctx, userID, amount)
}

func TestPurchaseRoutes_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenAuth("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.IssueToken(userID, "b@example.com")
	assert.NoError(t, err)

	newRouter := func(ps service.PurchaseServiceI) *gin.Engine {
		router := gin.New()
		NewPurchaseRoutes(router.Group("/api"), ps, tokens)
		return router
	}

	t.Run("Rewarded purchase", func(t *testing.T) {
		ps := &stubPurchaseService{
			create: func(ctx context.Context, id uuid.UUID, amount float64) (*model.Purchase, bool, error) {
				assert.Equal(t, userID, id)
				assert.Equal(t, 49.99, amount)
				return &model.Purchase{
					ID:        uuid.New(),
					UserID:    id,
					Amount:    amount,
					CreatedAt: time.Now(),
				}, true, nil
			},
		}

		w := postJSON(newRouter(ps), "/api/purchases", gin.H{"amount": 49.99}, token)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["message"], "reward")
	})

	t.Run("Plain purchase", func(t *testing.T) {
		ps := &stubPurchaseService{
			create: func(ctx context.Context, id uuid.UUID, amount float64) (*model.Purchase, bool, error) {
				return &model.Purchase{ID: uuid.New(), UserID: id, Amount: amount}, false, nil
			},
		}

		w := postJSON(newRouter(ps), "/api/purchases", gin.H{"amount": 10}, token)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "purchase successful", body["message"])
	})

	t.Run("Missing amount", func(t *testing.T) {
		w := postJSON(newRouter(&stubPurchaseService{}), "/api/purchases", gin.H{}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		w := postJSON(newRouter(&stubPurchaseService{}), "/api/purchases", gin.H{"amount": -1}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Without token", func(t *testing.T) {
		w := postJSON(newRouter(&stubPurchaseService{}), "/api/purchases", gin.H{"amount": 10}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
