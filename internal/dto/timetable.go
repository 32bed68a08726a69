package dto

// ── 课表模块 DTO ──

// SelectCourseRequest 选入课程请求
type SelectCourseRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// AddOccurrenceRequest 添加班次请求
type AddOccurrenceRequest struct {
	CourseID         string `json:"course_id" binding:"required"`
	OccurrenceNumber string `json:"occurrence_number" binding:"required"`
}

// RemoveOccurrenceRequest 移除班次请求
type RemoveOccurrenceRequest struct {
	CourseID         string `json:"course_id" binding:"required"`
	OccurrenceNumber string `json:"occurrence_number" binding:"required"`
}

// ConflictView 冲突视图：候选班次被当日哪个已有安排阻挡
type ConflictView struct {
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// AddOccurrenceResponse 添加班次响应
// Added=false 时 Conflicts 非空，整个操作未生效（无部分插入）
type AddOccurrenceResponse struct {
	Added     bool           `json:"added"`
	Conflicts []ConflictView `json:"conflicts,omitempty"`
}

// BlockLayout 网格像素布局（由 grid 配置推算）
type BlockLayout struct {
	Top    int `json:"top"`
	Height int `json:"height"`
}

// PlacedSessionView 已放置安排视图
type PlacedSessionView struct {
	CourseID         string      `json:"course_id"`
	CourseName       string      `json:"course_name"`
	OccurrenceNumber string      `json:"occurrence_number"`
	ActivityType     string      `json:"activity_type,omitempty"`
	Day              string      `json:"day"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	Venue            string      `json:"venue"`
	Lecturer         string      `json:"lecturer"`
	Layout           BlockLayout `json:"layout"`
}

// DayColumnView 单日课表列
type DayColumnView struct {
	Day      string              `json:"day"`
	Sessions []PlacedSessionView `json:"sessions"`
}

// SelectedCourseView 已选课程及其激活班次
type SelectedCourseView struct {
	CourseID   string  `json:"course_id"`
	CourseName string  `json:"course_name"`
	// ActiveOccurrence 当前激活的班次号；nil 表示尚未添加任何班次
	ActiveOccurrence *string `json:"active_occurrence"`
}

// TimetableResponse 完整课表响应
type TimetableResponse struct {
	Days     []DayColumnView      `json:"days"`
	Selected []SelectedCourseView `json:"selected_courses"`
}
