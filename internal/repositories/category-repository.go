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

const categoryTable = "categories"

const categorySelectFields = `c.id, c.name, c.code, c.description, c.created_at, c.updated_at`

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
	CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage, logger: logger}
}

func scanCategory(row pgx.Row) (*entities.Category, error) {
	var c entities.Category
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) CountCategories(ctx context.Context, filter types.Filter) (uint64, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s c", categoryTable)
	args := []interface{}{}
	if filter.Search != "" {
		countQuery += " WHERE c.name ILIKE $1 OR c.code ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error) {
	total, err := r.CountCategories(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Category{}, total, err
	}

	whereClause := ""
	args := []interface{}{}
	if filter.Search != "" {
		whereClause = "WHERE c.name ILIKE $1 OR c.code ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s c %s ORDER BY c.id %s`,
		categorySelectFields, categoryTable, whereClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]entities.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, *category)
	}
	return categories, total, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.id = $1`, categorySelectFields, categoryTable)
	return scanCategory(r.storage.QueryRow(ctx, query, id))
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	query := `INSERT INTO categories (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, code, description, created_at, updated_at`
	return scanCategory(r.storage.QueryRow(ctx, query, category.Name, category.Code, category.Description))
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*entities.Category, error) {
	updateBuilder := sq.Update(categoryTable).
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
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindCategory(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, name, code, description, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCategory(r.storage.QueryRow(ctx, query, args...))
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
