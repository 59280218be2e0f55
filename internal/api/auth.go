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

type authRoutes struct {
	as service.AuthServiceI
	a  *auth.TokenAuth
}

func NewAuthRoutes(handler *gin.RouterGroup, as service.AuthServiceI, a *auth.TokenAuth) {
	r := &authRoutes{as: as, a: a}
	h := handler.Group("/auth")
	{
		h.POST("/register", r.Register)
		h.POST("/login", r.Login)
		h.GET("/me", a.Middleware(), r.Me)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (r *authRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := r.as.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "user registered successfully",
		"token":        result.Token,
		"referralCode": result.ReferralCode,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *authRoutes) Login(c *gin.Context) {
	log := logger.Logger()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := r.as.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to log in user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "login successful",
		"token":        result.Token,
		"referralCode": result.ReferralCode,
	})
}

func (r *authRoutes) Me(c *gin.Context) {
	log := logger.Logger()

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		log.Error("identity not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user, err := r.as.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error("failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"referralCode": user.ReferralCode,
		"credits":      user.Credits,
		"referredBy":   user.ReferredBy,
		"createdAt":    user.CreatedAt,
	})
}
