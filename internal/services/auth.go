package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/repositories"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/service"
	"property-control/pkg/utils"
)

// refreshTokenKey - ключ в redis, под которым живёт выданный refresh-токен.
// Наличие ключа означает, что токен действителен; logout удаляет ключ.
func refreshTokenKey(jti string) string {
	return fmt.Sprintf("refresh_jti:%s", jti)
}

type AuthService struct {
	userRepository  repositories.UserRepositoryInterface
	cacheRepository repositories.CacheRepositoryInterface
	jwtService      service.JWTService
	logger          *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		jwtService:      jwtService,
		logger:          logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		s.logger.Warn("попытка входа с неизвестным логином", zap.String("username", payload.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err = utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("попытка входа с неверным паролем", zap.Uint64("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	tokens, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("ошибка генерации токенов", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	err = s.cacheRepository.Set(ctx, refreshTokenKey(tokens.RefreshTokenID),
		strconv.FormatUint(user.ID, 10), s.jwtService.GetRefreshTokenTTL())
	if err != nil {
		s.logger.Error("ошибка сохранения refresh-токена в кеше", zap.Error(err))
		return nil, err
	}

	s.logger.Info("пользователь вошёл в систему", zap.Uint64("user_id", user.ID))
	return &dto.AuthResponseDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         mapUserToDTO(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return err
	}
	if !claims.IsRefreshToken {
		return apperrors.ErrTokenIsNotRefresh
	}

	if err = s.cacheRepository.Del(ctx, refreshTokenKey(claims.ID)); err != nil {
		s.logger.Error("ошибка удаления refresh-токена из кеша", zap.Error(err))
		return err
	}

	s.logger.Info("пользователь вышел из системы", zap.Uint64("user_id", claims.UserID))
	return nil
}

// Refresh выдаёт новую пару токенов по действующему refresh-токену.
// Старый токен отзывается: повторное использование невозможно.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	if _, err = s.cacheRepository.Get(ctx, refreshTokenKey(claims.ID)); err != nil {
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userRepository.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	tokens, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("ошибка генерации токенов", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	if err = s.cacheRepository.Del(ctx, refreshTokenKey(claims.ID)); err != nil {
		s.logger.Error("ошибка отзыва старого refresh-токена", zap.Error(err))
		return nil, err
	}
	err = s.cacheRepository.Set(ctx, refreshTokenKey(tokens.RefreshTokenID),
		strconv.FormatUint(user.ID, 10), s.jwtService.GetRefreshTokenTTL())
	if err != nil {
		s.logger.Error("ошибка сохранения refresh-токена в кеше", zap.Error(err))
		return nil, err
	}

	return &dto.AuthResponseDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         mapUserToDTO(user),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := mapUserToDTO(user)
	return &result, nil
}
