package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/service"
	"property-control/pkg/utils"
)

func newAuthTestEnv(t *testing.T) (*AuthService, *fakeUserRepository, *fakeCacheRepository) {
	t.Helper()
	userRepo := newFakeUserRepository()
	cacheRepo := newFakeCacheRepository()
	jwtService := service.NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
	svc := NewAuthService(userRepo, cacheRepo, jwtService, zap.NewNop())
	return svc, userRepo, cacheRepo
}

func seedActiveUser(t *testing.T, repo *fakeUserRepository, username, password, role string) *entities.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return repo.addUser(entities.User{
		Username: username,
		Password: hashed,
		Role:     role,
		IsActive: true,
	})
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo, cacheRepo := newAuthTestEnv(t)
	user := seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	response, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, user.ID, response.User.ID)
	// Refresh-токен учтён в кеше
	assert.Len(t, cacheRepo.values, 1)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, _, _ := newAuthTestEnv(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthTestEnv(t)
	seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, userRepo, _ := newAuthTestEnv(t)
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	userRepo.addUser(entities.User{Username: "fired", Password: hashed, Role: entities.RoleUser, IsActive: false})

	_, err = svc.Login(context.Background(), dto.LoginDTO{Username: "fired", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, userRepo, cacheRepo := newAuthTestEnv(t)
	seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	response, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "secret123"})
	require.NoError(t, err)
	require.Len(t, cacheRepo.values, 1)

	require.NoError(t, svc.Logout(context.Background(), response.RefreshToken))
	assert.Empty(t, cacheRepo.values)

	// Отозванный токен больше не обменивается
	_, err = svc.Refresh(context.Background(), response.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestLogout_RejectsAccessToken(t *testing.T) {
	svc, userRepo, _ := newAuthTestEnv(t)
	seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	response, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "secret123"})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), response.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, userRepo, cacheRepo := newAuthTestEnv(t)
	seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	login, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// Старый токен отозван, в кеше живёт только новый
	assert.Len(t, cacheRepo.values, 1)
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, userRepo, _ := newAuthTestEnv(t)
	seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	login, err := svc.Login(context.Background(), dto.LoginDTO{Username: "i.petrov", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestGetProfile(t *testing.T) {
	svc, userRepo, _ := newAuthTestEnv(t)
	user := seedActiveUser(t, userRepo, "i.petrov", "secret123", entities.RoleUser)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "i.petrov", profile.Username)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
