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

const transferTable = "property_transfers"

const transferSelectFields = `t.id, t.property_id, t.from_department_id, t.to_department_id,
	t.transfer_date, t.notes, t.transferred_by,
	p.name AS property_name, p.code AS property_code,
	fd.name AS from_department_name, td.name AS to_department_name,
	COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.username) AS transferred_by_name`

const transferJoinClause = `property_transfers t
	JOIN properties p ON t.property_id = p.id
	JOIN departments fd ON t.from_department_id = fd.id
	JOIN departments td ON t.to_department_id = td.id
	LEFT JOIN users u ON t.transferred_by = u.id`

type TransferRepositoryInterface interface {
	GetTransfers(ctx context.Context, filter types.Filter) ([]entities.PropertyTransfer, uint64, error)
	GetRecentTransfers(ctx context.Context, limit int) ([]entities.PropertyTransfer, error)
	FindTransfer(ctx context.Context, id uint64) (*entities.PropertyTransfer, error)
	CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer entities.PropertyTransfer) (*entities.PropertyTransfer, error)
}

type TransferRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTransferRepository(storage *pgxpool.Pool, logger *zap.Logger) TransferRepositoryInterface {
	return &TransferRepository{storage: storage, logger: logger}
}

func scanTransfer(row pgx.Row) (*entities.PropertyTransfer, error) {
	var t entities.PropertyTransfer
	err := row.Scan(
		&t.ID, &t.PropertyID, &t.FromDepartmentID, &t.ToDepartmentID,
		&t.TransferDate, &t.Notes, &t.TransferredBy,
		&t.PropertyName, &t.PropertyCode,
		&t.FromDepartmentName, &t.ToDepartmentName, &t.TransferredByName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования property_transfer: %w", err)
	}
	return &t, nil
}

func (r *TransferRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	args := []interface{}{}
	if propertyID, ok := filter.Filter["property"]; ok {
		args = append(args, propertyID)
		return "WHERE t.property_id = $1", args
	}
	return "", args
}

func (r *TransferRepository) CountTransfers(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s t %s", transferTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TransferRepository) GetTransfers(ctx context.Context, filter types.Filter) ([]entities.PropertyTransfer, uint64, error) {
	total, err := r.CountTransfers(ctx, filter)
	if err != nil || total == 0 {
		return []entities.PropertyTransfer{}, total, err
	}

	whereClause, args := r.buildFilterQuery(filter)
	limitClause := ""
	if filter.WithPagination {
		argCounter := len(args) + 1
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY t.transfer_date DESC, t.id DESC %s`,
		transferSelectFields, transferJoinClause, whereClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transfers := make([]entities.PropertyTransfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, err
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, total, rows.Err()
}

func (r *TransferRepository) GetRecentTransfers(ctx context.Context, limit int) ([]entities.PropertyTransfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY t.transfer_date DESC, t.id DESC LIMIT $1`,
		transferSelectFields, transferJoinClause)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]entities.PropertyTransfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *transfer)
	}
	return transfers, rows.Err()
}

// findTransferBy работает и через пул, и внутри транзакции.
func findTransferBy(ctx context.Context, q querier, id uint64) (*entities.PropertyTransfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE t.id = $1`, transferSelectFields, transferJoinClause)
	return scanTransfer(q.QueryRow(ctx, query, id))
}

func (r *TransferRepository) FindTransfer(ctx context.Context, id uint64) (*entities.PropertyTransfer, error) {
	return findTransferBy(ctx, r.storage, id)
}

// CreateTransferInTx вставляет запись о перемещении внутри переданной
// транзакции. Запись неизменяема: методов Update/Delete у репозитория нет.
func (r *TransferRepository) CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer entities.PropertyTransfer) (*entities.PropertyTransfer, error) {
	insertQuery := `INSERT INTO property_transfers
		(property_id, from_department_id, to_department_id, transfer_date, notes, transferred_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id uint64
	err := tx.QueryRow(ctx, insertQuery,
		transfer.PropertyID, transfer.FromDepartmentID, transfer.ToDepartmentID,
		transfer.TransferDate, transfer.Notes, transfer.TransferredBy,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания записи о перемещении: %w", err)
	}
	return findTransferBy(ctx, tx, id)
}
