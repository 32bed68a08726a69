package service

import (
	"testing"

	"github.com/MarcusMQF/StudySync/internal/model"
)

func TestParseDayTime_Standard(t *testing.T) {
	dt, ok := parseDayTime("Monday 09:00 - 11:00")
	if !ok {
		t.Fatal("标准格式应解析成功")
	}
	if dt.Day != model.Monday || dt.Start != "09:00" || dt.End != "11:00" {
		t.Errorf("解析结果错误: %+v", dt)
	}
}

func TestParseDayTime_Variants(t *testing.T) {
	cases := []struct {
		raw   string
		day   model.Weekday
		start string
		end   string
	}{
		{"MON 9:00 - 10:00", model.Monday, "09:00", "10:00"},
		{"friday, 14:00-16:00", model.Friday, "14:00", "16:00"},
		{"Wed 10:00 - 12:00 (2h)", model.Wednesday, "10:00", "12:00"},
		{"Tuesday 8:30 - 9:30\nextra line", model.Tuesday, "08:30", "09:30"},
	}
	for _, tc := range cases {
		dt, ok := parseDayTime(tc.raw)
		if !ok {
			t.Errorf("%q 应解析成功", tc.raw)
			continue
		}
		if dt.Day != tc.day || dt.Start != tc.start || dt.End != tc.end {
			t.Errorf("%q 解析结果错误: %+v", tc.raw, dt)
		}
	}
}

func TestParseDayTime_PlaceholdersAndInvalid(t *testing.T) {
	cases := []string{
		"", "-", "--", "()", "( )", "N/A", "n/a",
		"Funday 09:00 - 10:00", // 非法星期
		"Monday",               // 缺时间
		"Monday 10:00 - 09:00", // 倒置区间
		"Monday 10:00 - 10:00", // 零长区间
		"Dr. Smith",            // 讲师续行内容
	}
	for _, raw := range cases {
		if _, ok := parseDayTime(raw); ok {
			t.Errorf("%q 应解析失败", raw)
		}
	}
}
