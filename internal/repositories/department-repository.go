package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
)

const departmentTable = "departments"

const departmentSelectFields = `d.id, d.name, d.code, d.manager_id,
	COALESCE(NULLIF(TRIM(m.first_name || ' ' || m.last_name), ''), m.username) AS manager_name,
	d.description, d.created_at, d.updated_at`

const departmentJoinClause = `departments d LEFT JOIN users m ON d.manager_id = m.id`

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.Code, &d.ManagerID, &d.ManagerName, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) CountDepartments(ctx context.Context, filter types.Filter) (uint64, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s d", departmentTable)
	args := []interface{}{}
	if filter.Search != "" {
		countQuery += " WHERE d.name ILIKE $1 OR d.code ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	total, err := r.CountDepartments(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Department{}, total, err
	}

	whereClause := ""
	args := []interface{}{}
	if filter.Search != "" {
		whereClause = "WHERE d.name ILIKE $1 OR d.code ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY d.id %s`,
		departmentSelectFields, departmentJoinClause, whereClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *dept)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE d.id = $1`, departmentSelectFields, departmentJoinClause)
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	query := `INSERT INTO departments (name, code, manager_id, description)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		department.Name, department.Code, department.ManagerID, department.Description,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindDepartment(ctx, id)
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	updateBuilder := sq.Update(departmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Name != nil {
		updateBuilder = updateBuilder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.Code != nil {
		updateBuilder = updateBuilder.Set("code", *payload.Code)
		hasChanges = true
	}
	if payload.ManagerID.Valid {
		updateBuilder = updateBuilder.Set("manager_id", payload.ManagerID.Int64)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindDepartment(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, err
	}
	var updatedID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return r.FindDepartment(ctx, updatedID)
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	query := `DELETE FROM departments WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
