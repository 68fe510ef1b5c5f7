package services

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	"property-control/internal/repositories"
	"property-control/pkg/contextkeys"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
	"property-control/pkg/utils"
)

type PropertyService struct {
	propertyRepository repositories.PropertyRepositoryInterface
	logger             *zap.Logger
}

func NewPropertyService(propertyRepository repositories.PropertyRepositoryInterface, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		propertyRepository: propertyRepository,
		logger:             logger,
	}
}

// generatePropertyCode выдаёт короткий инвентарный код: первые 8 символов
// случайного UUID в верхнем регистре. Код назначается один раз при создании.
func generatePropertyCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

func mapPropertyToDTO(p *entities.Property) dto.PropertyDTO {
	categoryID := null.Int64{}
	if p.CategoryID != nil {
		categoryID = null.Int64From(int64(*p.CategoryID))
	}
	currentDepartmentID := null.Int64{}
	if p.CurrentDepartmentID != nil {
		currentDepartmentID = null.Int64From(int64(*p.CurrentDepartmentID))
	}
	return dto.PropertyDTO{
		ID:                    p.ID,
		Code:                  p.Code,
		Name:                  p.Name,
		Description:           p.Description,
		CategoryID:            categoryID,
		CategoryName:          p.CategoryName,
		DepartmentID:          p.DepartmentID,
		DepartmentName:        p.DepartmentName,
		CurrentDepartmentID:   currentDepartmentID,
		CurrentDepartmentName: p.CurrentDepartmentName,
		Status:                p.Status,
		PurchaseDate:          utils.FormatDatePtr(p.PurchaseDate),
		PurchasePrice:         p.PurchasePrice,
		CurrentValue:          p.CurrentValue,
		SerialNumber:          p.SerialNumber,
		InventoryNumber:       p.InventoryNumber,
		Brand:                 p.Brand,
		Model:                 p.Model,
		CreatedBy:             p.CreatedBy,
		CreatedByName:         p.CreatedByName,
		CreatedAt:             utils.FormatTimePtr(p.CreatedAt),
		UpdatedAt:             utils.FormatTimePtr(p.UpdatedAt),
	}
}

func (s *PropertyService) GetProperties(ctx context.Context, filter types.Filter) ([]dto.PropertyDTO, uint64, error) {
	properties, total, err := s.propertyRepository.GetProperties(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении списка имущества", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PropertyDTO, 0, len(properties))
	for i := range properties {
		result = append(result, mapPropertyToDTO(&properties[i]))
	}
	return result, total, nil
}

func (s *PropertyService) FindProperty(ctx context.Context, id uint64) (*dto.PropertyDTO, error) {
	property, err := s.propertyRepository.FindProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapPropertyToDTO(property)
	return &result, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, payload dto.CreatePropertyDTO) (*dto.PropertyDTO, error) {
	creatorID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || creatorID == 0 {
		return nil, apperrors.ErrUserIDNotFoundInContext
	}

	property := entities.Property{
		Code:            generatePropertyCode(),
		Name:            payload.Name,
		Description:     payload.Description,
		DepartmentID:    payload.DepartmentID,
		Status:          payload.Status,
		PurchasePrice:   payload.PurchasePrice,
		CurrentValue:    payload.CurrentValue,
		SerialNumber:    payload.SerialNumber,
		InventoryNumber: payload.InventoryNumber,
		Brand:           payload.Brand,
		Model:           payload.Model,
		CreatedBy:       creatorID,
	}

	if property.Status == "" {
		property.Status = entities.PropertyStatusActive
	}

	if payload.CategoryID.Valid {
		categoryID := uint64(payload.CategoryID.Int64)
		property.CategoryID = &categoryID
	}

	// Держатель по умолчанию - департамент-владелец
	if payload.CurrentDepartmentID.Valid {
		currentID := uint64(payload.CurrentDepartmentID.Int64)
		property.CurrentDepartmentID = &currentID
	} else {
		ownerID := payload.DepartmentID
		property.CurrentDepartmentID = &ownerID
	}

	if payload.PurchaseDate != "" {
		purchaseDate, err := time.Parse(utils.DateFormat, payload.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Неверный формат даты покупки, ожидается YYYY-MM-DD")
		}
		property.PurchaseDate = &purchaseDate
	}

	created, err := s.propertyRepository.CreateProperty(ctx, property)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Имущество с таким кодом уже существует")
		}
		s.logger.Error("ошибка при создании имущества", zap.Error(err))
		return nil, err
	}

	s.logger.Info("имущество создано",
		zap.Uint64("id", created.ID),
		zap.String("code", created.Code),
		zap.Uint64("department_id", created.DepartmentID),
	)
	result := mapPropertyToDTO(created)
	return &result, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id uint64, payload dto.UpdatePropertyDTO) (*dto.PropertyDTO, error) {
	updated, err := s.propertyRepository.UpdateProperty(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении имущества", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapPropertyToDTO(updated)
	return &result, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id uint64) error {
	err := s.propertyRepository.DeleteProperty(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при удалении имущества", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
