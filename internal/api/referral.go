package api

import (
	"errors"
	"net/http"
	"time"

	"referral_backend/internal/service"
	"referral_backend/pkg/auth"
	"referral_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type referralRoutes struct {
	rs service.ReferralServiceI
	a  *auth.TokenAuth
}

func NewReferralRoutes(handler *gin.RouterGroup, rs service.ReferralServiceI, a *auth.TokenAuth) {
	r := &referralRoutes{rs: rs, a: a}
	h := handler.Group("/referrals")
	h.Use(a.Middleware())
	{
		h.POST("/use", r.ApplyCode)
		h.GET("/mine", r.Mine)
	}
}

type ApplyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r *referralRoutes) ApplyCode(c *gin.Context) {
	log := logger.Logger()

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		log.Error("identity not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req ApplyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referral code is required"})
		return
	}

	referrer, err := r.rs.ApplyCode(c.Request.Context(), identity.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidCode),
			errors.Is(err, service.ErrSelfReferral),
			errors.Is(err, service.ErrCodeAlreadyUsed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error("failed to apply referral code", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply referral code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "referral code applied successfully",
		"referrer": referrer,
	})
}

type referralEntry struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

func (r *referralRoutes) Mine(c *gin.Context) {
	log := logger.Logger()

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		log.Error("identity not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	overview, err := r.rs.Overview(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to get referral overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get referrals"})
		return
	}

	referrals := make([]referralEntry, len(overview.Referrals))
	for i, entry := range overview.Referrals {
		referrals[i] = referralEntry{
			Name:   entry.Name,
			Email:  entry.Email,
			Status: string(entry.Status),
			Date:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalReferrals": overview.TotalReferrals,
		"credits":        overview.Credits,
		"referrals":      referrals,
	})
}
