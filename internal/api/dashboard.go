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

type dashboardRoutes struct {
	ds service.DashboardServiceI
	a  *auth.TokenAuth
}

func NewDashboardRoutes(handler *gin.RouterGroup, ds service.DashboardServiceI, a *auth.TokenAuth) {
	r := &dashboardRoutes{ds: ds, a: a}
	h := handler.Group("/dashboard")
	h.Use(a.Middleware())
	{
		h.GET("/summary", r.Summary)
	}
}

func (r *dashboardRoutes) Summary(c *gin.Context) {
	log := logger.Logger()

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		log.Error("identity not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	summary, err := r.ds.Summary(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to get dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":               summary.Name,
		"email":              summary.Email,
		"referralCode":       summary.ReferralCode,
		"totalReferrals":     summary.TotalReferrals,
		"convertedReferrals": summary.ConvertedReferrals,
		"credits":            summary.Credits,
	})
}
