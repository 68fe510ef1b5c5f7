package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	"property-control/internal/repositories"
	"property-control/pkg/contextkeys"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
	"property-control/pkg/utils"
)

type TransferService struct {
	transferRepository   repositories.TransferRepositoryInterface
	propertyRepository   repositories.PropertyRepositoryInterface
	departmentRepository repositories.DepartmentRepositoryInterface
	txManager            repositories.TxManagerInterface
	logger               *zap.Logger
}

func NewTransferService(
	transferRepository repositories.TransferRepositoryInterface,
	propertyRepository repositories.PropertyRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		transferRepository:   transferRepository,
		propertyRepository:   propertyRepository,
		departmentRepository: departmentRepository,
		txManager:            txManager,
		logger:               logger,
	}
}

func mapTransferToDTO(t *entities.PropertyTransfer) dto.TransferDTO {
	return dto.TransferDTO{
		ID:                 t.ID,
		PropertyID:         t.PropertyID,
		PropertyName:       t.PropertyName,
		PropertyCode:       t.PropertyCode,
		FromDepartmentID:   t.FromDepartmentID,
		FromDepartmentName: t.FromDepartmentName,
		ToDepartmentID:     t.ToDepartmentID,
		ToDepartmentName:   t.ToDepartmentName,
		TransferDate:       utils.FormatTime(t.TransferDate),
		Notes:              t.Notes,
		TransferredBy:      t.TransferredBy,
		TransferredByName:  t.TransferredByName,
	}
}

// TransferProperty перемещает имущество в другой департамент: в одной
// транзакции создаёт запись в истории перемещений и переназначает текущего
// держателя. Исходный департамент фиксируется до изменения, поэтому история
// всегда отражает фактическую цепочку передач. Перемещение в тот же
// департамент допустимо и тоже попадает в историю.
func (s *TransferService) TransferProperty(ctx context.Context, propertyID, toDepartmentID uint64, notes string) (*dto.TransferDTO, error) {
	if toDepartmentID == 0 {
		return nil, apperrors.NewBadRequestError("Не указан департамент-получатель")
	}

	actorID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || actorID == 0 {
		return nil, apperrors.ErrUserIDNotFoundInContext
	}

	property, err := s.propertyRepository.FindProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if _, err = s.departmentRepository.FindDepartment(ctx, toDepartmentID); err != nil {
		return nil, err
	}

	// Откуда передаём: текущий держатель, либо владелец, если держатель
	// был сброшен при удалении департамента.
	fromDepartmentID := property.DepartmentID
	if property.CurrentDepartmentID != nil {
		fromDepartmentID = *property.CurrentDepartmentID
	}

	var created *entities.PropertyTransfer
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		created, err = s.transferRepository.CreateTransferInTx(ctx, tx, entities.PropertyTransfer{
			PropertyID:       propertyID,
			FromDepartmentID: fromDepartmentID,
			ToDepartmentID:   toDepartmentID,
			TransferDate:     time.Now(),
			Notes:            notes,
			TransferredBy:    actorID,
		})
		if err != nil {
			return err
		}
		return s.propertyRepository.UpdateCurrentDepartmentInTx(ctx, tx, propertyID, toDepartmentID)
	})
	if err != nil {
		s.logger.Error("ошибка при перемещении имущества",
			zap.Uint64("property_id", propertyID),
			zap.Uint64("to_department_id", toDepartmentID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("имущество перемещено",
		zap.Uint64("property_id", propertyID),
		zap.Uint64("from_department_id", fromDepartmentID),
		zap.Uint64("to_department_id", toDepartmentID),
		zap.Uint64("transferred_by", actorID),
	)
	result := mapTransferToDTO(created)
	return &result, nil
}

func (s *TransferService) GetTransfers(ctx context.Context, filter types.Filter) ([]dto.TransferDTO, uint64, error) {
	transfers, total, err := s.transferRepository.GetTransfers(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении истории перемещений", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TransferDTO, 0, len(transfers))
	for i := range transfers {
		result = append(result, mapTransferToDTO(&transfers[i]))
	}
	return result, total, nil
}

func (s *TransferService) GetRecentTransfers(ctx context.Context, limit int) ([]dto.TransferDTO, error) {
	transfers, err := s.transferRepository.GetRecentTransfers(ctx, limit)
	if err != nil {
		s.logger.Error("ошибка при получении последних перемещений", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TransferDTO, 0, len(transfers))
	for i := range transfers {
		result = append(result, mapTransferToDTO(&transfers[i]))
	}
	return result, nil
}

func (s *TransferService) FindTransfer(ctx context.Context, id uint64) (*dto.TransferDTO, error) {
	transfer, err := s.transferRepository.FindTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapTransferToDTO(transfer)
	return &result, nil
}
