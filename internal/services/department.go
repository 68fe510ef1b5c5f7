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

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

func mapDepartmentToDTO(d *entities.Department) dto.DepartmentDTO {
	managerID := null.Int64{}
	if d.ManagerID != nil {
		managerID = null.Int64From(int64(*d.ManagerID))
	}
	return dto.DepartmentDTO{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		ManagerID:   managerID,
		ManagerName: d.ManagerName,
		Description: d.Description,
		CreatedAt:   utils.FormatTimePtr(d.CreatedAt),
		UpdatedAt:   utils.FormatTimePtr(d.UpdatedAt),
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepository.GetDepartments(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении списка департаментов", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.DepartmentDTO, 0, len(departments))
	for i := range departments {
		result = append(result, mapDepartmentToDTO(&departments[i]))
	}
	return result, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepository.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapDepartmentToDTO(department)
	return &result, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department := entities.Department{
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
	}
	if payload.ManagerID.Valid {
		managerID := uint64(payload.ManagerID.Int64)
		department.ManagerID = &managerID
	}

	created, err := s.departmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Департамент с таким кодом уже существует")
		}
		s.logger.Error("ошибка при создании департамента", zap.Error(err))
		return nil, err
	}

	s.logger.Info("департамент создан", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	result := mapDepartmentToDTO(created)
	return &result, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	updated, err := s.departmentRepository.UpdateDepartment(ctx, id, payload)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBadRequestError("Департамент с таким кодом уже существует")
		}
		s.logger.Error("ошибка при обновлении департамента", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapDepartmentToDTO(updated)
	return &result, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	err := s.departmentRepository.DeleteDepartment(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при удалении департамента", zap.Uint64("id", id), zap.Error(err))
	}
	return err
}
