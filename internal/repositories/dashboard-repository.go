package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"property-control/internal/entities"
)

type DashboardCounters struct {
	TotalProperties  uint64
	ActiveProperties uint64
	TotalDepartments uint64
	TotalCategories  uint64
}

type DashboardRepositoryInterface interface {
	GetCounters(ctx context.Context) (*DashboardCounters, error)
	GetPropertiesByDepartment(ctx context.Context) (map[string]uint64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetCounters(ctx context.Context) (*DashboardCounters, error) {
	query, args, err := sq.Select(
		"(SELECT COUNT(*) FROM properties)",
		fmt.Sprintf("(SELECT COUNT(*) FROM properties WHERE status = '%s')", entities.PropertyStatusActive),
		"(SELECT COUNT(*) FROM departments)",
		"(SELECT COUNT(*) FROM categories)",
	).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	var c DashboardCounters
	if err := r.storage.QueryRow(ctx, query, args...).Scan(
		&c.TotalProperties, &c.ActiveProperties, &c.TotalDepartments, &c.TotalCategories,
	); err != nil {
		return nil, fmt.Errorf("ошибка получения счётчиков дашборда: %w", err)
	}
	return &c, nil
}

// GetPropertiesByDepartment считает имущество по текущему держателю,
// департаменты без имущества тоже попадают в ответ с нулём.
func (r *DashboardRepository) GetPropertiesByDepartment(ctx context.Context) (map[string]uint64, error) {
	query := `SELECT d.name, COUNT(p.id)
		FROM departments d
		LEFT JOIN properties p ON p.current_department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.id`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]uint64)
	for rows.Next() {
		var name string
		var count uint64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		result[name] = count
	}
	return result, rows.Err()
}
