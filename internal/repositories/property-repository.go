package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/entities"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
)

const propertyTable = "properties"

const propertySelectFields = `p.id, p.code, p.name, p.description,
	p.category_id, p.department_id, p.current_department_id,
	p.status, p.purchase_date, p.purchase_price, p.current_value,
	p.serial_number, p.inventory_number, p.brand, p.model, p.created_by,
	c.name AS category_name, d.name AS department_name, cd.name AS current_department_name,
	COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.username) AS created_by_name,
	p.created_at, p.updated_at`

const propertyJoinClause = `properties p
	LEFT JOIN categories c ON p.category_id = c.id
	JOIN departments d ON p.department_id = d.id
	LEFT JOIN departments cd ON p.current_department_id = cd.id
	LEFT JOIN users u ON p.created_by = u.id`

// propertyAllowedFilterFields - фильтры из query string и их колонки.
// Фильтр по департаменту смотрит на текущего держателя, а не на владельца.
var propertyAllowedFilterFields = map[string]string{
	"department": "p.current_department_id",
	"category":   "p.category_id",
	"status":     "p.status",
}

// buildPropertyFilter собирает WHERE: поисковая строка объединяется по OR
// над name/code/description, точные фильтры добавляются через AND.
func buildPropertyFilter(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.code ILIKE $%d OR p.description ILIKE $%d)",
			argCounter, argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}

	for key, value := range filter.Filter {
		dbColumn, ok := propertyAllowedFilterFields[key]
		if !ok {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", dbColumn, argCounter))
		args = append(args, value)
		argCounter++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

type PropertyRepositoryInterface interface {
	GetProperties(ctx context.Context, filter types.Filter) ([]entities.Property, uint64, error)
	FindProperty(ctx context.Context, id uint64) (*entities.Property, error)
	CreateProperty(ctx context.Context, property entities.Property) (*entities.Property, error)
	UpdateProperty(ctx context.Context, id uint64, payload dto.UpdatePropertyDTO) (*entities.Property, error)
	UpdateCurrentDepartmentInTx(ctx context.Context, tx pgx.Tx, propertyID, departmentID uint64) error
	DeleteProperty(ctx context.Context, id uint64) error
}

type PropertyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPropertyRepository(storage *pgxpool.Pool, logger *zap.Logger) PropertyRepositoryInterface {
	return &PropertyRepository{storage: storage, logger: logger}
}

func scanProperty(row pgx.Row) (*entities.Property, error) {
	var p entities.Property
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description,
		&p.CategoryID, &p.DepartmentID, &p.CurrentDepartmentID,
		&p.Status, &p.PurchaseDate, &p.PurchasePrice, &p.CurrentValue,
		&p.SerialNumber, &p.InventoryNumber, &p.Brand, &p.Model, &p.CreatedBy,
		&p.CategoryName, &p.DepartmentName, &p.CurrentDepartmentName, &p.CreatedByName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования property: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepository) CountProperties(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := buildPropertyFilter(filter)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s p %s", propertyTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PropertyRepository) GetProperties(ctx context.Context, filter types.Filter) ([]entities.Property, uint64, error) {
	total, err := r.CountProperties(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Property{}, total, err
	}

	whereClause, args := buildPropertyFilter(filter)
	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY p.id %s`,
		propertySelectFields, propertyJoinClause, whereClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	properties := make([]entities.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, *property)
	}
	return properties, total, rows.Err()
}

func (r *PropertyRepository) FindProperty(ctx context.Context, id uint64) (*entities.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE p.id = $1`, propertySelectFields, propertyJoinClause)
	return scanProperty(r.storage.QueryRow(ctx, query, id))
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, property entities.Property) (*entities.Property, error) {
	query := `INSERT INTO properties
		(code, name, description, category_id, department_id, current_department_id,
		 status, purchase_date, purchase_price, current_value,
		 serial_number, inventory_number, brand, model, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		property.Code, property.Name, property.Description,
		property.CategoryID, property.DepartmentID, property.CurrentDepartmentID,
		property.Status, property.PurchaseDate, property.PurchasePrice, property.CurrentValue,
		property.SerialNumber, property.InventoryNumber, property.Brand, property.Model,
		property.CreatedBy,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindProperty(ctx, id)
}

// UpdateProperty обновляет карточку имущества. Поля code и
// current_department_id здесь не трогаются никогда: код неизменяем,
// держатель меняется только операцией перемещения.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, id uint64, payload dto.UpdatePropertyDTO) (*entities.Property, error) {
	updateBuilder := sq.Update(propertyTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Name != nil {
		updateBuilder = updateBuilder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if payload.CategoryID.Valid {
		updateBuilder = updateBuilder.Set("category_id", payload.CategoryID.Int64)
		hasChanges = true
	}
	if payload.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *payload.DepartmentID)
		hasChanges = true
	}
	if payload.Status != nil {
		updateBuilder = updateBuilder.Set("status", *payload.Status)
		hasChanges = true
	}
	if payload.PurchaseDate != nil {
		updateBuilder = updateBuilder.Set("purchase_date", *payload.PurchaseDate)
		hasChanges = true
	}
	if payload.PurchasePrice != nil {
		updateBuilder = updateBuilder.Set("purchase_price", *payload.PurchasePrice)
		hasChanges = true
	}
	if payload.CurrentValue != nil {
		updateBuilder = updateBuilder.Set("current_value", *payload.CurrentValue)
		hasChanges = true
	}
	if payload.SerialNumber != nil {
		updateBuilder = updateBuilder.Set("serial_number", *payload.SerialNumber)
		hasChanges = true
	}
	if payload.InventoryNumber != nil {
		updateBuilder = updateBuilder.Set("inventory_number", *payload.InventoryNumber)
		hasChanges = true
	}
	if payload.Brand != nil {
		updateBuilder = updateBuilder.Set("brand", *payload.Brand)
		hasChanges = true
	}
	if payload.Model != nil {
		updateBuilder = updateBuilder.Set("model", *payload.Model)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindProperty(ctx, id)
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
	return r.FindProperty(ctx, updatedID)
}

func (r *PropertyRepository) UpdateCurrentDepartmentInTx(ctx context.Context, tx pgx.Tx, propertyID, departmentID uint64) error {
	query := `UPDATE properties SET current_department_id = $1, updated_at = NOW() WHERE id = $2`
	result, err := tx.Exec(ctx, query, departmentID, propertyID)
	if err != nil {
		return fmt.Errorf("ошибка обновления текущего департамента: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id uint64) error {
	query := `DELETE FROM properties WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
