package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanjeevani/coordination-api/internal/model"
)

const ContextUser = "current_user"

// SessionValidator resolves a bearer token to its user
type SessionValidator interface {
	Authenticate(token string) (*model.User, error)
}

type AuthMiddleware struct {
	sessions SessionValidator
}

func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires a valid session token and stores the user on the
// context for handlers downstream.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "missing bearer token",
			})
			return
		}

		user, err := m.sessions.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "invalid or expired session",
			})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireRole gates a route group to one portal role
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "insufficient role",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
