package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/services"
	"property-control/pkg/contextkeys"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/utils"
)

type AuthController struct {
	authService *services.AuthService
	logger      *zap.Logger
}

func NewAuthController(authService *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func (ctrl *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	response, err := ctrl.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, response, "Вход выполнен успешно", http.StatusOK)
}

func (ctrl *AuthController) Logout(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.authService.Logout(ctx.Request().Context(), payload.RefreshToken); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Выход выполнен успешно", http.StatusOK)
}

func (ctrl *AuthController) Refresh(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	response, err := ctrl.authService.Refresh(ctx.Request().Context(), payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, response, "Токены обновлены", http.StatusOK)
}

func (ctrl *AuthController) GetProfile(ctx echo.Context) error {
	userID, ok := ctx.Request().Context().Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return utils.ErrorResponse(ctx, apperrors.ErrUserIDNotFoundInContext, ctrl.logger)
	}

	profile, err := ctrl.authService.GetProfile(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, profile, "Профиль получен успешно", http.StatusOK)
}
