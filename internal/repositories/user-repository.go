package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"property-control/internal/entities"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/types"
)

const userTable = "users"

const userSelectFields = `u.id, u.username, u.email, u.first_name, u.last_name,
	u.password, u.role, u.department_id, u.phone, u.is_active, u.created_at, u.updated_at`

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Password, &u.Role, &u.DepartmentID, &u.Phone, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) CountUsers(ctx context.Context, filter types.Filter) (uint64, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s u", userTable)
	args := []interface{}{}
	if filter.Search != "" {
		countQuery += " WHERE u.username ILIKE $1 OR u.first_name ILIKE $1 OR u.last_name ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	total, err := r.CountUsers(ctx, filter)
	if err != nil || total == 0 {
		return []entities.User{}, total, err
	}

	whereClause := ""
	args := []interface{}{}
	if filter.Search != "" {
		whereClause = "WHERE u.username ILIKE $1 OR u.first_name ILIKE $1 OR u.last_name ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s u %s ORDER BY u.id %s`,
		userSelectFields, userTable, whereClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s u WHERE u.id = $1`, userSelectFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s u WHERE u.username = $1`, userSelectFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := `INSERT INTO users
		(username, email, first_name, last_name, password, role, department_id, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.Password, user.Role, user.DepartmentID, user.Phone, user.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindUser(ctx, id)
}
