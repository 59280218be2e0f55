package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenAuth_RoundTrip(t *testing.T) {
	tokens := NewTokenAuth("test-secret", time.Hour)
	userID := uuid.New()

	token, err := tokens.IssueToken(userID, "a@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := tokens.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "a@example.com", identity.Email)
}

func TestTokenAuth_Expired(t *testing.T) {
	tokens := NewTokenAuth("test-secret", -time.Minute)

	token, err := tokens.IssueToken(uuid.New(), "a@example.com")
	assert.NoError(t, err)

	_, err = tokens.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuth_WrongSecret(t *testing.T) {
	issuer := NewTokenAuth("secret-one", time.Hour)
	verifier := NewTokenAuth("secret-two", time.Hour)

	token, err := issuer.IssueToken(uuid.New(), "a@example.com")
	assert.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuth_Garbage(t *testing.T) {
	tokens := NewTokenAuth("test-secret", time.Hour)

	_, err := tokens.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuth_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := NewTokenAuth("test-secret", time.Hour)
	userID := uuid.New()

	router := gin.New()
	router.GET("/protected", tokens.Middleware(), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.UserID, "email": identity.Email})
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "Missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed token",
			header:         "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Valid token",
			header: func() string {
				token, err := tokens.IssueToken(userID, "a@example.com")
				assert.NoError(t, err)
				return "Bearer " + token
			}(),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
