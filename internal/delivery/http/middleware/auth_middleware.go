// Package middleware provides the HTTP-side auth and error middlewares.
package middleware

import (
	"slices"
	"strings"

	"teachmatch/config"
	"teachmatch/internal/delivery/http/response"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the echo context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrCredentialMissing.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "Failed to parse token claims")
		}
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "Not an access token")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrCredentialInvalid.ErrorCode(), "Invalid user ID format in token")
		}

		rolesClaim, _ := claims["roles"].([]any)
		roles := make([]string, 0, len(rolesClaim))
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		c.Set("userID", userID)
		c.Set("roles", roles)

		return next(c)
	}
}

// RequireRole gates a route group on one role. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get("roles").([]string)
			if !ok || !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, domainerrors.ErrPermissionDenied.ErrorCode(), "Permission denied: requires '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
