package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-control/internal/entities"
	"property-control/internal/repositories"
)

type fakeDashboardRepository struct {
	counters     repositories.DashboardCounters
	byDepartment map[string]uint64
}

func (r *fakeDashboardRepository) GetCounters(ctx context.Context) (*repositories.DashboardCounters, error) {
	counters := r.counters
	return &counters, nil
}

func (r *fakeDashboardRepository) GetPropertiesByDepartment(ctx context.Context) (map[string]uint64, error) {
	return r.byDepartment, nil
}

func TestGetStats(t *testing.T) {
	dashboardRepo := &fakeDashboardRepository{
		counters: repositories.DashboardCounters{
			TotalProperties:  10,
			ActiveProperties: 7,
			TotalDepartments: 3,
			TotalCategories:  4,
		},
		byDepartment: map[string]uint64{"IT": 6, "HR": 4},
	}
	transferRepo := newFakeTransferRepository()
	for i := 0; i < 8; i++ {
		_, err := transferRepo.CreateTransferInTx(context.Background(), nil, entities.PropertyTransfer{
			PropertyID:       uint64(i + 1),
			FromDepartmentID: 1,
			ToDepartmentID:   2,
			TransferredBy:    1,
		})
		require.NoError(t, err)
	}

	svc := NewDashboardService(dashboardRepo, transferRepo, zap.NewNop())
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(10), stats.TotalProperties)
	assert.Equal(t, uint64(7), stats.ActiveProperties)
	assert.Equal(t, uint64(3), stats.TotalDepartments)
	assert.Equal(t, uint64(4), stats.TotalCategories)
	assert.Equal(t, uint64(6), stats.PropertiesByDepartment["IT"])
	// В сводку попадают только последние пять перемещений
	assert.Len(t, stats.RecentTransfers, 5)
	assert.Equal(t, uint64(8), stats.RecentTransfers[0].PropertyID)
}
