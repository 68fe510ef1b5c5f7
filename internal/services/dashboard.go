package services

import (
	"context"

	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/repositories"
)

// recentTransfersOnDashboard - сколько последних перемещений уходит в сводку.
const recentTransfersOnDashboard = 5

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	transferRepository  repositories.TransferRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	transferRepository repositories.TransferRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		transferRepository:  transferRepository,
		logger:              logger,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	counters, err := s.dashboardRepository.GetCounters(ctx)
	if err != nil {
		s.logger.Error("ошибка при получении счётчиков дашборда", zap.Error(err))
		return nil, err
	}

	byDepartment, err := s.dashboardRepository.GetPropertiesByDepartment(ctx)
	if err != nil {
		s.logger.Error("ошибка при подсчёте имущества по департаментам", zap.Error(err))
		return nil, err
	}

	recent, err := s.transferRepository.GetRecentTransfers(ctx, recentTransfersOnDashboard)
	if err != nil {
		s.logger.Error("ошибка при получении последних перемещений", zap.Error(err))
		return nil, err
	}

	recentDTOs := make([]dto.TransferDTO, 0, len(recent))
	for i := range recent {
		recentDTOs = append(recentDTOs, mapTransferToDTO(&recent[i]))
	}

	return &dto.DashboardStatsDTO{
		TotalProperties:        counters.TotalProperties,
		ActiveProperties:       counters.ActiveProperties,
		TotalDepartments:       counters.TotalDepartments,
		TotalCategories:        counters.TotalCategories,
		PropertiesByDepartment: byDepartment,
		RecentTransfers:        recentDTOs,
	}, nil
}
