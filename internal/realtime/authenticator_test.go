package realtime

import (
	"context"
	"net/http/httptest"
	"testing"

	"teachmatch/config"
	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	mockRepo "teachmatch/internal/mocks/repository"
	mockService "teachmatch/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authenticatorFixtures holds all test dependencies for authenticator tests.
type authenticatorFixtures struct {
	authenticator *Authenticator
	tokenSvc      *mockService.MockTokenService
	userRepo      *mockRepo.MockUserRepository
}

func createTestAuthenticator(t *testing.T) authenticatorFixtures {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"

	return authenticatorFixtures{
		authenticator: NewAuthenticator(cfg, tokenSvc, userRepo),
		tokenSvc:      tokenSvc,
		userRepo:      userRepo,
	}
}

func accessTokenFor(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  userID.String(),
			"type": "access",
		},
	}
}

func TestAuthenticator_HeaderToken(t *testing.T) {
	fx := createTestAuthenticator(t)

	userID := uuid.New()
	want := &entity.User{ID: userID, IsActive: true}

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token", "access-secret").
		Return(accessTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindUserByID(context.Background(), userID).
		Return(want, nil)

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	user, err := fx.authenticator.Authenticate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestAuthenticator_QueryToken(t *testing.T) {
	fx := createTestAuthenticator(t)

	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("query-token", "access-secret").
		Return(accessTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindUserByID(context.Background(), userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)

	req := httptest.NewRequest("GET", "/ws?token=query-token", nil)

	_, err := fx.authenticator.Authenticate(context.Background(), req)
	require.NoError(t, err)
}

func TestAuthenticator_MissingToken(t *testing.T) {
	fx := createTestAuthenticator(t)

	req := httptest.NewRequest("GET", "/ws", nil)

	_, err := fx.authenticator.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialMissing)
}

func TestAuthenticator_InvalidToken(t *testing.T) {
	fx := createTestAuthenticator(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("garbage", "access-secret").
		Return(nil, errors.New("token is malformed"))

	req := httptest.NewRequest("GET", "/ws?token=garbage", nil)

	_, err := fx.authenticator.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialInvalid)
}

func TestAuthenticator_RefreshTokenRejected(t *testing.T) {
	fx := createTestAuthenticator(t)

	userID := uuid.New()
	token := &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  userID.String(),
			"type": "refresh",
		},
	}

	fx.tokenSvc.EXPECT().
		ValidateToken("refresh-token", "access-secret").
		Return(token, nil)

	req := httptest.NewRequest("GET", "/ws?token=refresh-token", nil)

	_, err := fx.authenticator.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialInvalid)
}

func TestAuthenticator_UnknownUserMasked(t *testing.T) {
	fx := createTestAuthenticator(t)

	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token", "access-secret").
		Return(accessTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindUserByID(context.Background(), userID).
		Return(nil, repository.ErrUserNotFound)

	req := httptest.NewRequest("GET", "/ws?token=valid-token", nil)

	// A deleted account must be indistinguishable from a bad token.
	_, err := fx.authenticator.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialInvalid)
}

func TestAuthenticator_InactiveUser(t *testing.T) {
	fx := createTestAuthenticator(t)

	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token", "access-secret").
		Return(accessTokenFor(userID), nil)

	fx.userRepo.EXPECT().
		FindUserByID(context.Background(), userID).
		Return(&entity.User{ID: userID, IsActive: false}, nil)

	req := httptest.NewRequest("GET", "/ws?token=valid-token", nil)

	_, err := fx.authenticator.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}
