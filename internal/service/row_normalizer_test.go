package service

import (
	"reflect"
	"testing"

	"github.com/MarcusMQF/StudySync/internal/model"
)

func TestNormalizeRows_BasicCourse(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1001", CourseName: "COMPUTER SYSTEMS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 09:00 - 11:00", Lecturer: "Dr. Anderson", Venue: "Room 1"},
		{CourseCode: "WIX1001", CourseName: "COMPUTER SYSTEMS", Occurrence: "1", Activity: "TUT",
			DayTime: "Wednesday 14:00 - 15:00", Lecturer: "Dr. Anderson", Venue: "Lab 1"},
	}

	courses := normalizeRows(rows)
	if len(courses) != 1 {
		t.Fatalf("期望 1 门课程，实际: %d", len(courses))
	}
	c := courses[0]
	if c.ID != "WIX1001" || len(c.Occurrences) != 1 {
		t.Fatalf("课程结构错误: %+v", c)
	}
	occ := c.Occurrences[0]
	if occ.ActivityType != "LEC/TUT" {
		t.Errorf("活动类型应按首见顺序以斜杠合并，实际: %q", occ.ActivityType)
	}
	if len(occ.Sessions) != 2 {
		t.Fatalf("期望 2 次安排，实际: %d", len(occ.Sessions))
	}
	if occ.Sessions[0].Day != model.Monday || occ.Sessions[1].Day != model.Wednesday {
		t.Errorf("安排应按星期排序: %+v", occ.Sessions)
	}
}

func TestNormalizeRows_DuplicateSessionMergesLecturers(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1002", CourseName: "PROGRAMMING", Occurrence: "1", Activity: "LEC",
			DayTime: "Tuesday 10:00 - 12:00", Lecturer: "Dr. Lee", Venue: "Room 2"},
		{CourseCode: "WIX1002", CourseName: "PROGRAMMING", Occurrence: "1", Activity: "LEC",
			DayTime: "Tuesday 10:00 - 12:00", Lecturer: "Ms. Chen; Dr. Lee", Venue: "Room 2"},
	}

	courses := normalizeRows(rows)
	occ := courses[0].Occurrences[0]
	if len(occ.Sessions) != 1 {
		t.Fatalf("同星期时间的重复行应合并为一次安排，实际: %d", len(occ.Sessions))
	}
	want := []string{"Dr. Lee", "Ms. Chen"}
	if !reflect.DeepEqual(occ.Sessions[0].Lecturers, want) {
		t.Errorf("讲师集合应去重并按字典序，期望 %v 实际 %v", want, occ.Sessions[0].Lecturers)
	}
}

func TestNormalizeRows_LecturerContinuationRow(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1003", CourseName: "MATHS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 09:00 - 10:00", Lecturer: "Dr. Zhang", Venue: "Room 3"},
		// 仅携带讲师的续行：并入上一次有效安排
		{CourseCode: "WIX1003", CourseName: "MATHS", Occurrence: "1", Activity: "LEC",
			DayTime: "", Lecturer: "Dr. Wang"},
	}

	courses := normalizeRows(rows)
	sess := courses[0].Occurrences[0].Sessions[0]
	want := []string{"Dr. Wang", "Dr. Zhang"}
	if !reflect.DeepEqual(sess.Lecturers, want) {
		t.Errorf("续行讲师应并入最近一次有效安排，期望 %v 实际 %v", want, sess.Lecturers)
	}
}

func TestNormalizeRows_ContinuationResetOnOccurrenceChange(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1003", CourseName: "MATHS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 09:00 - 10:00", Lecturer: "Dr. Zhang", Venue: "Room 3"},
		// 班次切换后的续行不得并入前一班次的安排
		{CourseCode: "WIX1003", CourseName: "MATHS", Occurrence: "2", Activity: "LEC",
			DayTime: "", Lecturer: "Dr. Wang"},
	}

	courses := normalizeRows(rows)
	c := courses[0]
	if len(c.Occurrences) != 1 {
		t.Fatalf("无有效安排的班次 2 应被剔除，实际班次数: %d", len(c.Occurrences))
	}
	want := []string{"Dr. Zhang"}
	if !reflect.DeepEqual(c.Occurrences[0].Sessions[0].Lecturers, want) {
		t.Errorf("班次 1 讲师不应被污染，期望 %v 实际 %v", want, c.Occurrences[0].Sessions[0].Lecturers)
	}
}

func TestNormalizeRows_OccurrenceNumericSort(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIA2001", CourseName: "DATABASES", Occurrence: "10", Activity: "LEC",
			DayTime: "Monday 09:00 - 10:00", Venue: "A"},
		{CourseCode: "WIA2001", CourseName: "DATABASES", Occurrence: "2", Activity: "LEC",
			DayTime: "Tuesday 09:00 - 10:00", Venue: "B"},
		{CourseCode: "WIA2001", CourseName: "DATABASES", Occurrence: "1", Activity: "LEC",
			DayTime: "Wednesday 09:00 - 10:00", Venue: "C"},
	}

	courses := normalizeRows(rows)
	var got []string
	for _, occ := range courses[0].Occurrences {
		got = append(got, occ.Number)
	}
	want := []string{"1", "2", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("班次号应按数值排序，期望 %v 实际 %v", want, got)
	}
}

func TestNormalizeRows_OccurrenceMixedSortLexicographic(t *testing.T) {
	// 任一班次号非整数时整体退回字典序；不得逐对混用两种比较
	rows := []rawRow{
		{CourseCode: "WIA2002", CourseName: "SOFTWARE ENGINEERING", Occurrence: "9", Activity: "LEC",
			DayTime: "Monday 09:00 - 10:00", Venue: "A"},
		{CourseCode: "WIA2002", CourseName: "SOFTWARE ENGINEERING", Occurrence: "10", Activity: "LEC",
			DayTime: "Tuesday 09:00 - 10:00", Venue: "B"},
		{CourseCode: "WIA2002", CourseName: "SOFTWARE ENGINEERING", Occurrence: "1Z", Activity: "LEC",
			DayTime: "Wednesday 09:00 - 10:00", Venue: "C"},
		{CourseCode: "WIA2002", CourseName: "SOFTWARE ENGINEERING", Occurrence: "2", Activity: "LEC",
			DayTime: "Thursday 09:00 - 10:00", Venue: "D"},
	}

	courses := normalizeRows(rows)
	var got []string
	for _, occ := range courses[0].Occurrences {
		got = append(got, occ.Number)
	}
	want := []string{"10", "1Z", "2", "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("混合班次号应整体按字典序，期望 %v 实际 %v", want, got)
	}
}

func TestNormalizeRows_DefaultOccurrenceAndSkippedRows(t *testing.T) {
	rows := []rawRow{
		// 缺课程代码/名称：整行跳过
		{CourseCode: "", CourseName: "GHOST", DayTime: "Monday 09:00 - 10:00"},
		{CourseCode: "WIX9999", CourseName: "", DayTime: "Monday 09:00 - 10:00"},
		// 缺班次号：落入缺省班次
		{CourseCode: "WIX1004", CourseName: "ETHICS", Activity: "LEC",
			DayTime: "Friday 10:00 - 11:00", Venue: "Room 5"},
	}

	courses := normalizeRows(rows)
	if len(courses) != 1 {
		t.Fatalf("期望 1 门课程，实际: %d", len(courses))
	}
	if courses[0].Occurrences[0].Number != defaultOccurrenceNumber {
		t.Errorf("缺省班次号应为 %q，实际: %q", defaultOccurrenceNumber, courses[0].Occurrences[0].Number)
	}
}

func TestNormalizeRows_CourseWithNoTimedSessionsDropped(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1005", CourseName: "SEMINAR", Occurrence: "1", Activity: "LEC",
			DayTime: "-", Lecturer: "Dr. Smith"},
	}

	courses := normalizeRows(rows)
	if len(courses) != 0 {
		t.Errorf("全班次均无星期时间的课程应从目录剔除，实际: %d 门", len(courses))
	}
}

func TestNormalizeRows_OnlineActivityForcesVenue(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1006", CourseName: "E-LEARNING", Occurrence: "1", Activity: "ONL",
			DayTime: "Thursday 13:00 - 14:00", Venue: "Room 9"},
	}

	courses := normalizeRows(rows)
	sess := courses[0].Occurrences[0].Sessions[0]
	if sess.Venue != model.VenueOnline {
		t.Errorf("线上课程场地应规范为 %q，实际: %q", model.VenueOnline, sess.Venue)
	}
}

func TestNormalizeRows_PlaceholderVenueRefined(t *testing.T) {
	rows := []rawRow{
		{CourseCode: "WIX1007", CourseName: "NETWORKS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 14:00 - 16:00", Venue: "-"},
		{CourseCode: "WIX1007", CourseName: "NETWORKS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 14:00 - 16:00", Venue: "Room 7"},
		// 已有真实场地后不再被覆盖
		{CourseCode: "WIX1007", CourseName: "NETWORKS", Occurrence: "1", Activity: "LEC",
			DayTime: "Monday 14:00 - 16:00", Venue: "Room 8"},
	}

	courses := normalizeRows(rows)
	sess := courses[0].Occurrences[0].Sessions[0]
	if sess.Venue != "Room 7" {
		t.Errorf("占位场地应被首个真实值补全且不再覆盖，实际: %q", sess.Venue)
	}
}
