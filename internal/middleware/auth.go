package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kheireldine/ai-investor-portal/internal/models"
)

// Context keys set by AuthMiddleware.
const (
	ContextInvestorID = "investorID"
	ContextEmail      = "email"
)

// Claims represents the claims in the JWT. Subject carries the
// investor's email.
type Claims struct {
	InvestorID uint   `json:"investor_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed bearer tokens. The signing key
// and token lifetime come from configuration; the manager holds no other
// state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret
// and token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateAccessToken generates a signed JWT for an investor, expiring
// after the configured lifetime.
func (m *TokenManager) GenerateAccessToken(investor *models.Investor) (string, error) {
	now := time.Now()
	claims := &Claims{
		InvestorID: investor.ID,
		Email:      investor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "investor-portal-api",
			Subject:   investor.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a bearer token. It returns an error
// for a bad signature, malformed payload, wrong signing method, or an
// expired or not-yet-valid token.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and sets the investor's
// identity in the context. Every protected route, including the AI
// endpoint, resolves identity only through this middleware.
func (m *TokenManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextInvestorID, claims.InvestorID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
