package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"upline-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Middleware validates the admin bearer token on protected routes.
type Middleware struct {
	jwtSecret string
	logger    *observability.Logger
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(jwtSecret string, logger *observability.Logger) Middleware {
	return Middleware{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Handle rejects requests without a valid HS256 bearer token. The subject
// claim is placed in the gin context for downstream handlers.
func (m *Middleware) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrExpiredToken.Error()})
			return
		}
		m.logger.Error(ctx, "failed to parse token", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
		return
	}
	if !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
		return
	}

	if sub, err := claims.GetSubject(); err == nil {
		c.Set("subject", sub)
	}
	c.Next()
}
