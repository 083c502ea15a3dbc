package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authUseCase usecase.AuthUseCase
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleGuest:     1,
	user.RoleReception: 2,
	user.RoleManager:   3,
	user.RoleAdmin:     4,
}

func NewAuthMiddleware(authUseCase usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, role, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
