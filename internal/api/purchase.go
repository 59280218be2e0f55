package api

import (
	"errors"
	"net/http"

	"referral_backend/internal/service"
	"referral_backend/pkg/auth"
	"referral_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type purchaseRoutes struct {
	ps service.PurchaseServiceI
	a  *auth.TokenAuth
}

func NewPurchaseRoutes(handler *gin.RouterGroup, ps service.PurchaseServiceI, a *auth.TokenAuth) {
	r := &purchaseRoutes{ps: ps, a: a}
	h := handler.Group("/purchases")
	h.Use(a.Middleware())
	{
		h.POST("", r.Create)
	}
}

type CreatePurchaseRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (r *purchaseRoutes) Create(c *gin.Context) {
	log := logger.Logger()

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		log.Error("identity not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase amount"})
		return
	}

	purchase, rewarded, err := r.ps.Create(c.Request.Context(), identity.UserID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to create purchase", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create purchase"})
		return
	}

	message := "purchase successful"
	if rewarded {
		message = "purchase successful, referral reward applied"
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"purchase": gin.H{
			"id":        purchase.ID,
			"amount":    purchase.Amount,
			"createdAt": purchase.CreatedAt,
		},
	})
}
