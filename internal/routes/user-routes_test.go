package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-control/internal/controllers"
	"property-control/internal/entities"
	"property-control/internal/services"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/middleware"
	"property-control/pkg/service"
	"property-control/pkg/types"
	"property-control/pkg/utils"
)

type stubUserRepository struct{}

func (r *stubUserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return []entities.User{}, 0, nil
}

func (r *stubUserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return &entities.User{ID: id, Username: "stub", Role: entities.RoleUser, IsActive: true}, nil
}

func (r *stubUserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	user.ID = 1
	return &user, nil
}

func newUserRoutesTestServer(t *testing.T) (*echo.Echo, service.JWTService) {
	t.Helper()
	logger := zap.NewNop()
	jwtService := service.NewJWTService("test-secret", time.Minute, time.Hour, logger)
	authMW := middleware.NewAuthMiddleware(jwtService, logger)

	userService := services.NewUserService(&stubUserRepository{}, logger)
	userController := controllers.NewUserController(userService, logger)

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	api := e.Group("/api")
	secure := api.Group("", authMW.Auth)
	runUserRoutes(secure, userController, authMW)
	return e, jwtService
}

func doAuthorizedRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Список пользователей доступен любому авторизованному пользователю,
// не только администратору.
func TestUserRoutes_ListOpenToAuthenticatedUser(t *testing.T) {
	e, jwtService := newUserRoutesTestServer(t)
	pair, err := jwtService.GenerateTokens(5, entities.RoleUser)
	require.NoError(t, err)

	rec := doAuthorizedRequest(e, http.MethodGet, "/api/admin/users", pair.AccessToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserRoutes_ListRequiresAuth(t *testing.T) {
	e, _ := newUserRoutesTestServer(t)

	rec := doAuthorizedRequest(e, http.MethodGet, "/api/admin/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Создание пользователя закрыто для обычной роли.
func TestUserRoutes_CreateForbiddenForRegularUser(t *testing.T) {
	e, jwtService := newUserRoutesTestServer(t)
	pair, err := jwtService.GenerateTokens(5, entities.RoleUser)
	require.NoError(t, err)

	rec := doAuthorizedRequest(e, http.MethodPost, "/api/admin/users", pair.AccessToken,
		`{"username":"newbie","password":"secret123"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserRoutes_CreateAllowedForAdmin(t *testing.T) {
	e, jwtService := newUserRoutesTestServer(t)
	pair, err := jwtService.GenerateTokens(1, entities.RoleAdmin)
	require.NoError(t, err)

	rec := doAuthorizedRequest(e, http.MethodPost, "/api/admin/users", pair.AccessToken,
		`{"username":"newbie","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
