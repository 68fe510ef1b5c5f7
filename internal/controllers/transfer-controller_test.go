package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"property-control/internal/entities"
	"property-control/internal/services"
	"property-control/pkg/types"
)

// recordingTransferRepository запоминает limit, с которым его вызвали.
type recordingTransferRepository struct {
	lastLimit int
}

func (r *recordingTransferRepository) GetTransfers(ctx context.Context, filter types.Filter) ([]entities.PropertyTransfer, uint64, error) {
	return []entities.PropertyTransfer{}, 0, nil
}

func (r *recordingTransferRepository) GetRecentTransfers(ctx context.Context, limit int) ([]entities.PropertyTransfer, error) {
	r.lastLimit = limit
	return []entities.PropertyTransfer{}, nil
}

func (r *recordingTransferRepository) FindTransfer(ctx context.Context, id uint64) (*entities.PropertyTransfer, error) {
	return &entities.PropertyTransfer{ID: id}, nil
}

func (r *recordingTransferRepository) CreateTransferInTx(ctx context.Context, tx pgx.Tx, transfer entities.PropertyTransfer) (*entities.PropertyTransfer, error) {
	return &transfer, nil
}

func recentTransfersRequest(t *testing.T, query string) (*httptest.ResponseRecorder, *recordingTransferRepository) {
	t.Helper()
	repo := &recordingTransferRepository{}
	svc := services.NewTransferService(repo, nil, nil, nil, zap.NewNop())
	ctrl := NewTransferController(svc, zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transfers/recent"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = ctrl.GetRecentTransfers(c)
	return rec, repo
}

func TestGetRecentTransfers_DefaultLimit(t *testing.T) {
	rec, repo := recentTransfersRequest(t, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestGetRecentTransfers_ExplicitLimit(t *testing.T) {
	rec, repo := recentTransfersRequest(t, "?limit=20")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, repo.lastLimit)
}

// Некорректное значение limit не считается ошибкой: запрос обслуживается
// со значением по умолчанию.
func TestGetRecentTransfers_BadLimitFallsBack(t *testing.T) {
	for _, query := range []string{"?limit=abc", "?limit=-3", "?limit=0", "?limit=100500"} {
		rec, repo := recentTransfersRequest(t, query)
		assert.Equal(t, http.StatusOK, rec.Code, query)
		assert.Equal(t, 5, repo.lastLimit, query)
	}
}
