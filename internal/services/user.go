package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	"property-control/internal/repositories"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
	"property-control/pkg/utils"
)

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func mapUserToDTO(u *entities.User) dto.UserDTO {
	departmentID := null.Int64{}
	if u.DepartmentID != nil {
		departmentID = null.Int64From(int64(*u.DepartmentID))
	}
	return dto.UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		DepartmentID: departmentID,
		Phone:        u.Phone,
	}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении списка пользователей", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, mapUserToDTO(&users[i]))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapUserToDTO(user)
	return &result, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user := entities.User{
		Username:  payload.Username,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Password:  hashedPassword,
		Role:      payload.Role,
		Phone:     payload.Phone,
		IsActive:  true,
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	if payload.DepartmentID.Valid {
		departmentID := uint64(payload.DepartmentID.Int64)
		user.DepartmentID = &departmentID
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Пользователь с таким логином уже существует")
		}
		s.logger.Error("ошибка при создании пользователя", zap.Error(err))
		return nil, err
	}

	s.logger.Info("пользователь создан",
		zap.Uint64("id", created.ID),
		zap.String("username", created.Username),
		zap.String("role", created.Role),
	)
	result := mapUserToDTO(created)
	return &result, nil
}
