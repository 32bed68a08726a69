package dto

// ── GPA 模块 DTO ──

// GPASubject 单科输入：等级 + 学分
// 两项均为空的行视为未填写，计算时跳过
type GPASubject struct {
	Grade       string  `json:"grade"`
	CreditHours float64 `json:"credit_hours"`
}

// CalculateGPARequest GPA 计算请求
type CalculateGPARequest struct {
	Subjects []GPASubject `json:"subjects" binding:"required"`
}

// CalculateGPAResponse GPA 计算响应
type CalculateGPAResponse struct {
	GPA          float64 `json:"gpa"` // 保留两位小数
	TotalCredits float64 `json:"total_credits"`
	TotalPoints  float64 `json:"total_points"`
}
