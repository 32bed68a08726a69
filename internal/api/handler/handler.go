package handler

import "github.com/MarcusMQF/StudySync/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Catalog *CatalogHandler
	Planner *PlannerHandler
	GPA     *GPAHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(svc.Catalog),
		Planner: NewPlannerHandler(svc.Planner),
		GPA:     NewGPAHandler(svc.GPA),
		Export:  NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
