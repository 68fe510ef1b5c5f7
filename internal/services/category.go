package services

import (
	"context"

	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	"property-control/internal/repositories"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
	"property-control/pkg/utils"
)

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(categoryRepository repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func mapCategoryToDTO(c *entities.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		CreatedAt:   utils.FormatTimePtr(c.CreatedAt),
		UpdatedAt:   utils.FormatTimePtr(c.UpdatedAt),
	}
}

func (s *CategoryService) GetCategories(ctx context.Context, filter types.Filter) ([]dto.CategoryDTO, uint64, error) {
	categories, total, err := s.categoryRepository.GetCategories(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении списка категорий", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		result = append(result, mapCategoryToDTO(&categories[i]))
	}
	return result, total, nil
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapCategoryToDTO(category)
	return &result, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	category := entities.Category{
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Категория с таким кодом уже существует")
		}
		s.logger.Error("ошибка при создании категории", zap.Error(err))
		return nil, err
	}

	s.logger.Info("категория создана", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	result := mapCategoryToDTO(created)
	return &result, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	updated, err := s.categoryRepository.UpdateCategory(ctx, id, payload)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Категория с таким кодом уже существует")
		}
		s.logger.Error("ошибка при обновлении категории", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapCategoryToDTO(updated)
	return &result, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	err := s.categoryRepository.DeleteCategory(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при удалении категории", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
