package realtime

import (
	"context"
	"net/http"
	"strings"

	"teachmatch/config"
	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/domain/service"
	"teachmatch/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Authenticator gates the WebSocket upgrade. Browsers cannot set headers on a
// WebSocket handshake, so the access token is accepted from the Authorization
// header or, failing that, the token query parameter.
type Authenticator struct {
	tokenSvc     service.TokenService
	userRepo     repository.UserRepository
	accessSecret string
}

// NewAuthenticator is the constructor for Authenticator.
func NewAuthenticator(cfg *config.Config, tokenSvc service.TokenService, userRepo repository.UserRepository) *Authenticator {
	return &Authenticator{
		tokenSvc:     tokenSvc,
		userRepo:     userRepo,
		accessSecret: cfg.SecretKey.Access,
	}
}

// Authenticate resolves the connecting user or refuses the connection. A
// valid token pointing at a missing account is reported as an invalid
// credential so probing cannot distinguish the two cases.
func (a *Authenticator) Authenticate(ctx context.Context, r *http.Request) (*entity.User, error) {
	token := extractToken(r)
	if token == "" {
		return nil, domainerrors.ErrCredentialMissing
	}

	parsed, err := a.tokenSvc.ValidateToken(token, a.accessSecret)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrCredentialInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrCredentialInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return nil, domainerrors.ErrCredentialInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrCredentialInvalid
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrCredentialInvalid
	}

	user, err := a.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCredentialInvalid
		}

		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return user, nil
}

// extractToken pulls the access token from the Authorization header or the
// token query parameter.
func extractToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return strings.TrimSpace(after)
	}

	return strings.TrimSpace(r.URL.Query().Get("token"))
}
