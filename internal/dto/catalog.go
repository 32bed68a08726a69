package dto

// ── 目录模块 DTO ──

// SessionView 上课安排视图
type SessionView struct {
	Day          string `json:"day"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Venue        string `json:"venue"`
	Lecturer     string `json:"lecturer"` // 讲师集合的逗号连接展示
	ActivityType string `json:"activity_type,omitempty"`
}

// OccurrenceView 班次视图
type OccurrenceView struct {
	OccurrenceNumber string        `json:"occurrence_number"`
	ActivityType     string        `json:"activity_type,omitempty"`
	Sessions         []SessionView `json:"sessions"`
}

// CourseView 课程视图
type CourseView struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Occurrences []OccurrenceView `json:"occurrences"`
}

// SearchCoursesResponse 课程搜索响应
// Loading=true 表示目录尚在导入中，前端应提示"加载中"而非"无结果"
type SearchCoursesResponse struct {
	Loading bool         `json:"loading"`
	Total   int          `json:"total"`
	Courses []CourseView `json:"courses"`
}

// ReloadCatalogResponse 目录重载响应
type ReloadCatalogResponse struct {
	Reloading bool `json:"reloading"`
}

// ImportCatalogResponse 目录文件导入响应
type ImportCatalogResponse struct {
	ImportedCourses int    `json:"imported_courses"`
	Source          string `json:"source"` // xlsx | json
}
