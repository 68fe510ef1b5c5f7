package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"property-control/internal/dto"
	"property-control/internal/entities"
	"property-control/internal/repositories"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
)

// Фейковые репозитории для юнит-тестов сервисного слоя: behaviour
// повторяет контракт реальных репозиториев, но данные живут в памяти.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakePropertyRepository struct {
	properties map[uint64]*entities.Property
	nextID     uint64
}

func newFakePropertyRepository() *fakePropertyRepository {
	return &fakePropertyRepository{properties: make(map[uint64]*entities.Property), nextID: 1}
}

func (r *fakePropertyRepository) GetProperties(ctx context.Context, filter types.Filter) ([]entities.Property, uint64, error) {
	result := make([]entities.Property, 0, len(r.properties))
	for _, p := range r.properties {
		result = append(result, *p)
	}
	return result, uint64(len(result)), nil
}

func (r *fakePropertyRepository) FindProperty(ctx context.Context, id uint64) (*entities.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePropertyRepository) CreateProperty(ctx context.Context, property entities.Property) (*entities.Property, error) {
	property.ID = r.nextID
	r.nextID++
	now := time.Now()
	property.CreatedAt = &now
	property.UpdatedAt = &now
	r.properties[property.ID] = &property
	copied := property
	return &copied, nil
}

func (r *fakePropertyRepository) UpdateProperty(ctx context.Context, id uint64, payload dto.UpdatePropertyDTO) (*entities.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Name != nil {
		p.Name = *payload.Name
	}
	if payload.Status != nil {
		p.Status = *payload.Status
	}
	copied := *p
	return &copied, nil
}

func (r *fakePropertyRepository) UpdateCurrentDepartmentInTx(ctx context.Context, tx pgx.Tx, propertyID, departmentID uint64) error {
	p, ok := r.properties[propertyID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.CurrentDepartmentID = &departmentID
	return nil
}

func (r *fakePropertyRepository) DeleteProperty(ctx context.Context, id uint64) error {
	if _, ok := r.properties[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.properties, id)
	return nil
}

type fakeDepartmentRepository struct {
	departments map[uint64]*entities.Department
}

func newFakeDepartmentRepository(ids ...uint64) *fakeDepartmentRepository {
	r := &fakeDepartmentRepository{departments: make(map[uint64]*entities.Department)}
	for _, id := range ids {
		r.departments[id] = &entities.Department{ID: id, Name: "Департамент", Code: "D"}
	}
	return r
}

func (r *fakeDepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	result := make([]entities.Department, 0, len(r.departments))
	for _, d := range r.departments {
		result = append(result, *d)
	}
	return result, uint64(len(result)), nil
}

func (r *fakeDepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	department.ID = uint64(len(r.departments) + 1)
	r.departments[department.ID] = &department
	copied := department
	return &copied, nil
}

func (r *fakeDepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	if _, ok := r.departments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.departments, id)
	return nil
}

type fakeTransferRepository struct {
	transfers []entities.PropertyTransfer
	nextID    uint64
}

func newFakeTransferRepository() *fakeTransferRepository {
	return &fakeTransferRepository{nextID: 1}
}

func (r *fakeTransferRepository) GetTransfers(ctx context.Context, filter types.Filter) ([]entities.PropertyTransfer, uint64, error) {
	result := make([]entities.PropertyTransfer, len(r.transfers))
	copy(result, r.transfers)
	return result, uint64(len(result)), nil
}

func (r *fakeTransferRepository) GetRecentTransfers(ctx context.Context, limit int) ([]entities.PropertyTransfer, error) {
	n := len(r.transfers)
	if limit < n {
		n = limit
	}
	result := make([]entities.PropertyTransfer, 0, n)
	for i := len(r.transfers) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.transfers[i])
	}
	return result, nil
}

func (r *fakeTransferRepository) FindTransfer(ctx context.Context, id uint64) (*entities.PropertyTransfer, error) {
	for i := range r.transfers {
		if r.transfers[i].ID == id {
			copied := r.transfers[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTransferRepository) CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer entities.PropertyTransfer) (*entities.PropertyTransfer, error) {
	transfer.ID = r.nextID
	r.nextID++
	r.transfers = append(r.transfers, transfer)
	copied := transfer
	return &copied, nil
}

type fakeUserRepository struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uint64]*entities.User), nextID: 1}
}

func (r *fakeUserRepository) addUser(u entities.User) *entities.User {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	result := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, *u)
	}
	return result, uint64(len(result)), nil
}

func (r *fakeUserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, apperrors.ErrBadRequest
		}
	}
	created := r.addUser(user)
	copied := *created
	return &copied, nil
}

type fakeCacheRepository struct {
	values map[string]string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{values: make(map[string]string)}
}

func (r *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case string:
		r.values[key] = v
	default:
		r.values[key] = ""
	}
	return nil
}

func (r *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (r *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

var (
	_ repositories.TxManagerInterface            = (*fakeTxManager)(nil)
	_ repositories.PropertyRepositoryInterface   = (*fakePropertyRepository)(nil)
	_ repositories.DepartmentRepositoryInterface = (*fakeDepartmentRepository)(nil)
	_ repositories.TransferRepositoryInterface   = (*fakeTransferRepository)(nil)
	_ repositories.UserRepositoryInterface       = (*fakeUserRepository)(nil)
	_ repositories.CacheRepositoryInterface      = (*fakeCacheRepository)(nil)
)
