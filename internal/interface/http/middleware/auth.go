package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookshop/internal/application/auth"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/jwt"
	"bookshop/pkg/response"
)

const (
	claimsKey = "auth_claims"
	tokenKey  = "auth_token"
)

// AuthMiddleware verifies bearer tokens and enforces role requirements.
type AuthMiddleware struct {
	tokens    *jwt.Manager
	blacklist auth.TokenBlacklist
}

func NewAuthMiddleware(tokens *jwt.Manager, blacklist auth.TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, blacklist: blacklist}
}

// RequireAuth rejects requests without a valid, unrevoked bearer token and
// stores the claims in the request context for handlers downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Error(c, apperrors.New(apperrors.KindAuthentication, "missing bearer token"))
			return
		}

		claims, err := m.tokens.Parse(raw)
		if err != nil {
			response.Error(c, err)
			return
		}

		revoked, err := m.blacklist.IsRevoked(c.Request.Context(), raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		if revoked {
			response.Error(c, apperrors.New(apperrors.KindAuthentication, "token has been revoked"))
			return
		}

		c.Set(claimsKey, claims)
		c.Set(tokenKey, raw)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token lacks the role.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil || !claims.HasRole(role) {
			response.Error(c, apperrors.New(apperrors.KindAuthorization, "insufficient privileges"))
			return
		}
		c.Next()
	}
}

func currentClaims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// CurrentUserID returns the authenticated user's id; zero when the request
// did not pass RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	claims := currentClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

// CurrentToken returns the raw bearer token of the request.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
