package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yusufoz/coursehub/internal/app/models"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
	"github.com/yusufoz/coursehub/internal/pkg/auth"
)

// identityKey is the gin context key holding the resolved caller.
const identityKey = "identity"

// AuthMiddleware resolves the caller's identity from access tokens issued by
// the external identity provider.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireIdentity gates a route group on a resolved identity. Requests without
// a valid token are rejected before any handler or store work happens.
func (m *AuthMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.resolve(c)
		if err != nil {
			code := dto.ErrorCodeUnauthorized
			message := "Authentication required"
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				code = dto.ErrorCodeExpiredToken
				message = "Token expired"
			case errors.Is(err, apperrors.ErrTokenInvalid):
				code = dto.ErrorCodeInvalidToken
				message = "Invalid token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalIdentity resolves an identity when a token is present but never
// rejects the request. Public reads run under this so handlers can still see
// who is asking.
func (m *AuthMiddleware) OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := m.resolve(c); err == nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// resolve extracts and validates the bearer token, returning the caller.
func (m *AuthMiddleware) resolve(c *gin.Context) (models.Identity, error) {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return models.Identity{}, err
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Identity{}, apperrors.ErrTokenInvalid
	}

	return models.Identity{UserID: userID, Email: claims.Email}, nil
}

// IdentityFromContext returns the resolved identity for the request, if any.
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}
