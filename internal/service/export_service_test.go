package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/internal/repository"
)

func setupTestExport(t *testing.T, withSchedule bool) ExportService {
	t.Helper()

	planner := NewPlannerService(testConfig(), testCatalog(), repository.NewMemoryStore(), zap.NewNop())
	if withSchedule {
		if _, err := planner.AddOccurrence("CSC1", "1"); err != nil {
			t.Fatalf("前置添加应成功: %v", err)
		}
	}
	return NewExportService(planner, zap.NewNop())
}

func TestExportService_ExportXLSX_Empty(t *testing.T) {
	svc := setupTestExport(t, false)

	_, _, err := svc.ExportXLSX()
	if !errors.Is(err, ErrExportEmptyTimetable) {
		t.Errorf("期望 ErrExportEmptyTimetable，实际: %v", err)
	}
}

func TestExportService_ExportXLSX_Success(t *testing.T) {
	svc := setupTestExport(t, true)

	buf, filename, err := svc.ExportXLSX()
	if err != nil {
		t.Fatalf("ExportXLSX 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %q", filename)
	}

	// 回读校验表头与数据行
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法工作簿: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Timetable")
	if err != nil {
		t.Fatalf("读取 Timetable 工作表失败: %v", err)
	}
	// 表头 + 两次安排
	if len(rows) != 3 {
		t.Fatalf("期望 3 行，实际: %d", len(rows))
	}
	if rows[0][0] != "Day" || rows[0][3] != "Course" {
		t.Errorf("表头错误: %v", rows[0])
	}
	if rows[1][0] != "MONDAY" || !strings.Contains(rows[1][3], "CSC1") {
		t.Errorf("数据行错误: %v", rows[1])
	}
}

func TestExportService_ExportICS_Empty(t *testing.T) {
	svc := setupTestExport(t, false)

	_, _, err := svc.ExportICS()
	if !errors.Is(err, ErrExportEmptyTimetable) {
		t.Errorf("期望 ErrExportEmptyTimetable，实际: %v", err)
	}
}

func TestExportService_ExportICS_Success(t *testing.T) {
	svc := setupTestExport(t, true)

	buf, filename, err := svc.ExportICS()
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾: %q", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Error("导出内容应为合法 iCalendar")
	}
	// CSC1 班次 1 有两次安排 → 两个事件
	if n := strings.Count(content, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("期望 2 个事件，实际: %d", n)
	}
	if !strings.Contains(content, "CSC1 SYSTEMS") {
		t.Error("事件摘要应包含课程代码与名称")
	}
	if !strings.Contains(content, "FREQ=WEEKLY") {
		t.Error("事件应携带按周重复规则")
	}
}
