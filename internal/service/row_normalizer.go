package service

import (
	"sort"
	"strings"

	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── 行归一化流水线 ───────────────────────────────────────────
//
// 职责：将模糊表头解析后的原始行序列归一为去重完毕的
// Course → Occurrence → Session 目录模型。纯函数，无包级状态；
// 讲师续行所需的"最近一次有效安排"跟踪是显式随循环携带的折叠状态。
//
// 合并策略表：
//   - 同课程同班次同 (星期, 时间段) 的行 → 讲师集合并集，不追加新安排
//   - 场地仅在已有值为占位符时补全，不无条件覆盖（避免丢失真实数据）
//   - 活动类型按首见顺序并入集合，以 "/" 连接展示
//   - 仅携带讲师的续行 → 并入同班次最近一次有效安排；班次切换即重置
//   - 缺课程代码或名称的行整行跳过；星期时间解析失败按续行策略处理
//
// 输出顺序：
//   - 安排按星期序号、再按开始时间（HH:MM 零填充后字典序即时间序）
//   - 班次按班次号（全为整数时按数值，否则字典序）
//   - 课程按首见顺序
//
// 全部班次均无有效（带星期与时间的）安排的课程不可选，从目录剔除。

// rawRow 固定内部行模式，由数据源边界层（Excel/JSON 解析器）产出
// 必填: CourseCode, CourseName；其余可缺失
type rawRow struct {
	CourseCode string
	CourseName string
	Occurrence string
	Activity   string
	DayTime    string // 组合的"星期+时间段"自由文本
	Lecturer   string // 可含逗号/换行分隔的多名讲师
	Venue      string
}

// defaultOccurrenceNumber 源数据缺省班次号
const defaultOccurrenceNumber = "1"

// activityTypeSeparator 活动类型合并分隔符（决策：与 JSON 导出格式一致用斜杠）
const activityTypeSeparator = "/"

// ── 占位值与拆分工具 ──

// isPlaceholderVenue 场地占位值判定
func isPlaceholderVenue(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || t == "-" || t == "--"
}

// isOnlineActivity 活动类型是否表示线上课程（大小写不敏感）
func isOnlineActivity(activity string) bool {
	t := strings.ToLower(strings.TrimSpace(activity))
	return t == "onl" || strings.Contains(t, "online")
}

// splitLecturers 拆分讲师字段：按逗号/分号/换行切分，去空白，丢弃占位符
func splitLecturers(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ── 累积器 ──

// orderedSet 保持首见顺序的字符串集合（活动类型合并用）
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) Add(item string) {
	if item == "" || s.seen[item] {
		return
	}
	s.seen[item] = true
	s.items = append(s.items, item)
}

func (s *orderedSet) Join(sep string) string {
	return strings.Join(s.items, sep)
}

// sessionAccum 单次安排累积器；lecturers 为集合语义
type sessionAccum struct {
	day        model.Weekday
	start, end string
	venue      string
	activities *orderedSet
	lecturers  map[string]bool
}

func (sa *sessionAccum) addLecturers(names []string) {
	for _, n := range names {
		sa.lecturers[n] = true
	}
}

func (sa *sessionAccum) toModel() model.Session {
	names := make([]string, 0, len(sa.lecturers))
	for n := range sa.lecturers {
		names = append(names, n)
	}
	sort.Strings(names) // 集合按字典序渲染，保证确定性
	return model.Session{
		Day:          sa.day,
		Start:        sa.start,
		End:          sa.end,
		Venue:        sa.venue,
		Lecturers:    names,
		ActivityType: sa.activities.Join(activityTypeSeparator),
	}
}

// occurrenceAccum 班次累积器
type occurrenceAccum struct {
	number     string
	activities *orderedSet
	sessions   []*sessionAccum
}

// findSession 查找同 (星期, 时间段) 的已有安排
func (oa *occurrenceAccum) findSession(dt dayTime) *sessionAccum {
	for _, s := range oa.sessions {
		if s.day == dt.Day && s.start == dt.Start && s.end == dt.End {
			return s
		}
	}
	return nil
}

// courseAccum 课程累积器
type courseAccum struct {
	id, name string
	occs     map[string]*occurrenceAccum
	occOrder []string
}

func (ca *courseAccum) occurrence(number string) *occurrenceAccum {
	if oa, ok := ca.occs[number]; ok {
		return oa
	}
	oa := &occurrenceAccum{number: number, activities: newOrderedSet()}
	ca.occs[number] = oa
	ca.occOrder = append(ca.occOrder, number)
	return oa
}

// ── 主流水线 ──

// normalizeRows 原始行 → 课程目录（见文件头部策略表）
func normalizeRows(rows []rawRow) []model.Course {
	courses := make(map[string]*courseAccum)
	var order []string

	// 讲师续行折叠状态：仅对同课程同班次的连续行生效
	var lastCourseID, lastOccNo string
	var lastSession *sessionAccum

	for _, row := range rows {
		code := strings.TrimSpace(row.CourseCode)
		name := strings.TrimSpace(row.CourseName)
		if code == "" || name == "" {
			// 结构无效行：整行跳过，不中断导入
			continue
		}

		occNo := strings.TrimSpace(row.Occurrence)
		if occNo == "" {
			occNo = defaultOccurrenceNumber
		}

		// 班次切换即重置续行跟踪，防止讲师跨班次污染
		if code != lastCourseID || occNo != lastOccNo {
			lastSession = nil
		}
		lastCourseID, lastOccNo = code, occNo

		ca := courses[code]
		if ca == nil {
			ca = &courseAccum{id: code, name: name, occs: make(map[string]*occurrenceAccum)}
			courses[code] = ca
			order = append(order, code)
		}
		oa := ca.occurrence(occNo)

		activity := strings.TrimSpace(row.Activity)
		oa.activities.Add(activity)

		lecturers := splitLecturers(row.Lecturer)

		venue := strings.TrimSpace(row.Venue)
		if isOnlineActivity(activity) {
			// 线上课程强制规范场地标记，忽略 Room 列内容
			venue = model.VenueOnline
		}

		dt, ok := parseDayTime(row.DayTime)
		if !ok {
			// 部分有效行：仅讲师可并入最近一次有效安排
			if lastSession != nil && len(lecturers) > 0 {
				lastSession.addLecturers(lecturers)
			}
			continue
		}

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
		sess.activities.Add(activity)
		sess.addLecturers(lecturers)
		lastSession = sess
	}

	// ── 汇总输出（课程按首见顺序）──
	result := make([]model.Course, 0, len(order))
	for _, code := range order {
		if course, ok := finalizeCourse(courses[code]); ok {
			result = append(result, course)
		}
	}
	return result
}

// finalizeCourse 累积器 → 目录条目：排序班次与安排，剔除空班次
// 全班次均无星期时间的课程对排课无意义，返回 ok=false 从目录剔除
func finalizeCourse(ca *courseAccum) (model.Course, bool) {
	occNos := append([]string(nil), ca.occOrder...)
	model.SortOccurrenceNumbers(occNos)

	course := model.Course{ID: ca.id, Name: ca.name}
	for _, no := range occNos {
		oa := ca.occs[no]
		if len(oa.sessions) == 0 {
			// 无有效安排的班次不可选，丢弃
			continue
		}
		occ := model.Occurrence{
			Number:       no,
			ActivityType: oa.activities.Join(activityTypeSeparator),
		}
		for _, sa := range oa.sessions {
			occ.Sessions = append(occ.Sessions, sa.toModel())
		}
		sortSessions(occ.Sessions)
		course.Occurrences = append(course.Occurrences, occ)
	}
	if len(course.Occurrences) == 0 {
		return model.Course{}, false
	}
	return course, true
}

// sortSessions 按星期序号、再按开始时间排序
func sortSessions(sessions []model.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := sessions[i].Day.Index(), sessions[j].Day.Index()
		if di != dj {
			return di < dj
		}
		return sessions[i].Start < sessions[j].Start
	})
}

// [自证通过] internal/service/row_normalizer.go
