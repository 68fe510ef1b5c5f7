package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-control/internal/entities"
	"property-control/pkg/contextkeys"
	apperrors "property-control/pkg/errors"
)

func newTransferTestEnv(t *testing.T) (*TransferService, *fakePropertyRepository, *fakeTransferRepository, *fakeTxManager) {
	t.Helper()
	propertyRepo := newFakePropertyRepository()
	transferRepo := newFakeTransferRepository()
	departmentRepo := newFakeDepartmentRepository(1, 2, 3)
	txManager := &fakeTxManager{}
	svc := NewTransferService(transferRepo, propertyRepo, departmentRepo, txManager, zap.NewNop())
	return svc, propertyRepo, transferRepo, txManager
}

func ctxWithUser(userID uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
}

func seedProperty(repo *fakePropertyRepository, ownerID uint64, holderID *uint64) *entities.Property {
	created, _ := repo.CreateProperty(context.Background(), entities.Property{
		Code:                "AB12CD34",
		Name:                "Ноутбук",
		DepartmentID:        ownerID,
		CurrentDepartmentID: holderID,
		Status:              entities.PropertyStatusActive,
		CreatedBy:           1,
	})
	return created
}

func TestTransferProperty_CreatesRecordAndMovesHolder(t *testing.T) {
	svc, propertyRepo, transferRepo, txManager := newTransferTestEnv(t)
	holder := uint64(1)
	property := seedProperty(propertyRepo, 1, &holder)

	result, err := svc.TransferProperty(ctxWithUser(7), property.ID, 2, "переезд в новый офис")
	require.NoError(t, err)

	// Запись истории фиксирует держателя до перемещения
	assert.Equal(t, property.ID, result.PropertyID)
	assert.Equal(t, uint64(1), result.FromDepartmentID)
	assert.Equal(t, uint64(2), result.ToDepartmentID)
	assert.Equal(t, uint64(7), result.TransferredBy)
	assert.Equal(t, "переезд в новый офис", result.Notes)

	// Держатель переназначен
	updated, err := propertyRepo.FindProperty(context.Background(), property.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CurrentDepartmentID)
	assert.Equal(t, uint64(2), *updated.CurrentDepartmentID)

	// Обе записи сделаны в одной транзакции
	assert.Equal(t, 1, txManager.calls)
	require.Len(t, transferRepo.transfers, 1)

	// Дата перемещения проставляется сервисом и уходит в запись
	assert.False(t, transferRepo.transfers[0].TransferDate.IsZero())
}

func TestTransferProperty_ChainPreservesHistory(t *testing.T) {
	svc, propertyRepo, transferRepo, _ := newTransferTestEnv(t)
	holder := uint64(1)
	property := seedProperty(propertyRepo, 1, &holder)

	_, err := svc.TransferProperty(ctxWithUser(7), property.ID, 2, "")
	require.NoError(t, err)
	second, err := svc.TransferProperty(ctxWithUser(7), property.ID, 3, "")
	require.NoError(t, err)

	// Второе перемещение отталкивается от нового держателя
	assert.Equal(t, uint64(2), second.FromDepartmentID)
	assert.Equal(t, uint64(3), second.ToDepartmentID)
	assert.Len(t, transferRepo.transfers, 2)
}

func TestTransferProperty_SelfTransferAllowed(t *testing.T) {
	svc, propertyRepo, transferRepo, _ := newTransferTestEnv(t)
	holder := uint64(2)
	property := seedProperty(propertyRepo, 1, &holder)

	result, err := svc.TransferProperty(ctxWithUser(7), property.ID, 2, "инвентаризация")
	require.NoError(t, err)

	// Перемещение в тот же департамент тоже попадает в историю
	assert.Equal(t, uint64(2), result.FromDepartmentID)
	assert.Equal(t, uint64(2), result.ToDepartmentID)
	assert.Len(t, transferRepo.transfers, 1)
}

func TestTransferProperty_FallsBackToOwnerWhenHolderEmpty(t *testing.T) {
	svc, propertyRepo, _, _ := newTransferTestEnv(t)
	property := seedProperty(propertyRepo, 1, nil)

	result, err := svc.TransferProperty(ctxWithUser(7), property.ID, 3, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.FromDepartmentID)
}

func TestTransferProperty_PropertyNotFound(t *testing.T) {
	svc, _, transferRepo, _ := newTransferTestEnv(t)

	_, err := svc.TransferProperty(ctxWithUser(7), 999, 2, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, transferRepo.transfers)
}

func TestTransferProperty_DepartmentNotFound(t *testing.T) {
	svc, propertyRepo, transferRepo, _ := newTransferTestEnv(t)
	holder := uint64(1)
	property := seedProperty(propertyRepo, 1, &holder)

	_, err := svc.TransferProperty(ctxWithUser(7), property.ID, 999, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, transferRepo.transfers)

	// Держатель не изменился
	unchanged, _ := propertyRepo.FindProperty(context.Background(), property.ID)
	assert.Equal(t, uint64(1), *unchanged.CurrentDepartmentID)
}

func TestTransferProperty_MissingDestination(t *testing.T) {
	svc, propertyRepo, _, _ := newTransferTestEnv(t)
	holder := uint64(1)
	property := seedProperty(propertyRepo, 1, &holder)

	_, err := svc.TransferProperty(ctxWithUser(7), property.ID, 0, "")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)
}

func TestTransferProperty_RequiresUserInContext(t *testing.T) {
	svc, propertyRepo, _, _ := newTransferTestEnv(t)
	holder := uint64(1)
	property := seedProperty(propertyRepo, 1, &holder)

	_, err := svc.TransferProperty(context.Background(), property.ID, 2, "")
	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
}
