package dto

import "github.com/MarcusMQF/StudySync/internal/model"

// NewCourseView 目录模型 → 视图转换
func NewCourseView(c model.Course) CourseView {
	view := CourseView{
		ID:          c.ID,
		Name:        c.Name,
		Occurrences: make([]OccurrenceView, 0, len(c.Occurrences)),
	}
	for _, occ := range c.Occurrences {
		ov := OccurrenceView{
			OccurrenceNumber: occ.Number,
			ActivityType:     occ.ActivityType,
			Sessions:         make([]SessionView, 0, len(occ.Sessions)),
		}
		for _, sess := range occ.Sessions {
			ov.Sessions = append(ov.Sessions, SessionView{
				Day:          string(sess.Day),
				StartTime:    sess.Start,
				EndTime:      sess.End,
				Venue:        sess.Venue,
				Lecturer:     sess.LecturerLabel(),
				ActivityType: sess.ActivityType,
			})
		}
		view.Occurrences = append(view.Occurrences, ov)
	}
	return view
}

// NewCourseViews 批量转换
func NewCourseViews(courses []model.Course) []CourseView {
	views := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, NewCourseView(c))
	}
	return views
}
