package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/session"
)

// Context keys under which the authenticated principal is stored.
const (
	ContextPrincipal     = "principal"
	ContextStudentNumber = "studentNumber"
	ContextAdminID       = "adminID"
	ContextSessionToken  = "sessionToken"
)

// AuthMiddleware guards routes with the in-memory session store.
type AuthMiddleware struct {
	sessions *session.Store
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireStudent allows only requests carrying a valid student session.
func (m *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return m.require(session.KindStudent)
}

// RequireAdmin allows only requests carrying a valid admin session.
// Student tokens are rejected here and vice versa; the namespaces never
// cross over.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(session.KindAdmin)
}

func (m *AuthMiddleware) require(kind session.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(apperrors.ErrSessionRequired.Error()))
			return
		}

		principal, err := m.sessions.Resolve(token, kind)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(err.Error()))
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Set(ContextSessionToken, token)
		switch kind {
		case session.KindStudent:
			c.Set(ContextStudentNumber, principal.StudentNumber)
		case session.KindAdmin:
			c.Set(ContextAdminID, principal.AdminID)
		}

		c.Next()
	}
}

// extractToken reads the session token from the Authorization header,
// with Session-Id as a fallback. A Bearer prefix is stripped if present.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		header = c.GetHeader("Session-Id")
	}
	header = strings.TrimSpace(header)
	if strings.HasPrefix(header, "Bearer ") {
		header = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return header
}

// StudentNumber returns the session student's number from the context.
func StudentNumber(c *gin.Context) string {
	return c.GetString(ContextStudentNumber)
}

// AdminID returns the session admin's id from the context.
func AdminID(c *gin.Context) int64 {
	return c.GetInt64(ContextAdminID)
}
