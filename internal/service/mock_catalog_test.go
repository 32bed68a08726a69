package service

import (
	"io"
	"strings"

	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── 测试用目录桩 ──
//
// 排课与导出测试不关心目录的加载流程，只需要确定的课程数据，
// 用内存桩替代 CatalogService。

type stubCatalog struct {
	courses []model.Course
	loading bool
}

func (s *stubCatalog) StartLoad() {}

func (s *stubCatalog) Import(_ io.Reader, _ string) (int, error) {
	return len(s.courses), nil
}

func (s *stubCatalog) Search(query string) ([]model.Course, bool) {
	if s.loading {
		return nil, true
	}
	q := strings.ToLower(query)
	if q == "" {
		return s.courses, false
	}
	var out []model.Course
	for _, c := range s.courses {
		if strings.Contains(strings.ToLower(c.ID), q) || strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, false
}

func (s *stubCatalog) Get(courseID string) (*model.Course, error) {
	if s.loading {
		return nil, ErrCatalogLoading
	}
	for i := range s.courses {
		if s.courses[i].ID == courseID {
			c := s.courses[i]
			return &c, nil
		}
	}
	return nil, ErrCatalogCourseNotFound
}

// testCatalog 排课测试固定数据：
//   - CSC1 班次 1 周一 09:00-10:00 + 周三 14:00-15:00
//   - CSC1 班次 2 周五 11:00-12:00
//   - CSC2 班次 1 周一 09:30-10:30（与 CSC1 班次 1 冲突）
//   - CSC3 班次 1 周一 10:00-11:00（与 CSC1 班次 1 端点相接，不冲突）
func testCatalog() *stubCatalog {
	return &stubCatalog{courses: []model.Course{
		{
			ID: "CSC1", Name: "SYSTEMS",
			Occurrences: []model.Occurrence{
				{Number: "1", ActivityType: "LEC", Sessions: []model.Session{
					{Day: model.Monday, Start: "09:00", End: "10:00", Venue: "R1", Lecturers: []string{"Dr. A"}, ActivityType: "LEC"},
					{Day: model.Wednesday, Start: "14:00", End: "15:00", Venue: "R1", Lecturers: []string{"Dr. A"}, ActivityType: "LEC"},
				}},
				{Number: "2", ActivityType: "LEC", Sessions: []model.Session{
					{Day: model.Friday, Start: "11:00", End: "12:00", Venue: "R2", Lecturers: []string{"Dr. B"}, ActivityType: "LEC"},
				}},
			},
		},
		{
			ID: "CSC2", Name: "NETWORKS",
			Occurrences: []model.Occurrence{
				{Number: "1", ActivityType: "LEC", Sessions: []model.Session{
					{Day: model.Monday, Start: "09:30", End: "10:30", Venue: "R3", Lecturers: []string{"Dr. C"}, ActivityType: "LEC"},
				}},
			},
		},
		{
			ID: "CSC3", Name: "DATABASES",
			Occurrences: []model.Occurrence{
				{Number: "1", ActivityType: "LEC", Sessions: []model.Session{
					{Day: model.Monday, Start: "10:00", End: "11:00", Venue: "R4", Lecturers: []string{"Dr. D"}, ActivityType: "LEC"},
				}},
			},
		},
	}}
}
