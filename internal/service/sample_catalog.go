package service

import "github.com/MarcusMQF/StudySync/internal/model"

// sampleCatalog 内置示例目录
// 数据源不可用且 catalog.sample_fallback=true 时作为降级目录，
// 保证搜索与排课功能可演示；不含任何真实教务数据
func sampleCatalog() []model.Course {
	return []model.Course{
		{
			ID:   "WIX1001",
			Name: "COMPUTER SYSTEM AND ORGANIZATIONS",
			Occurrences: []model.Occurrence{
				{
					Number:       "1",
					ActivityType: "LEC/TUT",
					Sessions: []model.Session{
						{Day: model.Monday, Start: "09:00", End: "11:00", Venue: "Room 1, Computing Building", Lecturers: []string{"Dr. Anderson"}, ActivityType: "LEC"},
						{Day: model.Wednesday, Start: "14:00", End: "15:00", Venue: "Lab 1, Computing Building", Lecturers: []string{"Dr. Anderson"}, ActivityType: "TUT"},
					},
				},
				{
					Number:       "2",
					ActivityType: "LEC/ONL",
					Sessions: []model.Session{
						{Day: model.Thursday, Start: "13:00", End: "14:00", Venue: model.VenueOnline, Lecturers: []string{"Dr. Wilson"}, ActivityType: "ONL"},
						{Day: model.Friday, Start: "11:00", End: "12:00", Venue: "Room 1, Computing Building", Lecturers: []string{"Dr. Wilson"}, ActivityType: "LEC"},
					},
				},
			},
		},
		{
			ID:   "WIX1002",
			Name: "FUNDAMENTAL OF PROGRAMMING",
			Occurrences: []model.Occurrence{
				{
					Number:       "1",
					ActivityType: "LEC/TUT",
					Sessions: []model.Session{
						{Day: model.Tuesday, Start: "10:00", End: "11:00", Venue: "Room 2, Computing Building", Lecturers: []string{"Dr. Lee"}, ActivityType: "LEC"},
						{Day: model.Thursday, Start: "15:00", End: "16:00", Venue: "Lab 2, Computing Building", Lecturers: []string{"Dr. Lee"}, ActivityType: "TUT"},
					},
				},
				{
					Number:       "2",
					ActivityType: "LEC",
					Sessions: []model.Session{
						{Day: model.Friday, Start: "13:00", End: "14:00", Venue: "Room 2, Computing Building", Lecturers: []string{"Ms. Chen"}, ActivityType: "LEC"},
					},
				},
			},
		},
		{
			ID:   "WIX1003",
			Name: "COMPUTING MATHEMATICS I",
			Occurrences: []model.Occurrence{
				{
					Number:       "1",
					ActivityType: "LEC/TUT",
					Sessions: []model.Session{
						{Day: model.Monday, Start: "11:00", End: "12:00", Venue: "Room 3, Mathematics Building", Lecturers: []string{"Dr. Zhang"}, ActivityType: "LEC"},
						{Day: model.Wednesday, Start: "14:00", End: "15:00", Venue: "Tutorial Room 1", Lecturers: []string{"Dr. Zhang"}, ActivityType: "TUT"},
					},
				},
				{
					Number:       "2",
					ActivityType: "LEC",
					Sessions: []model.Session{
						{Day: model.Thursday, Start: "09:00", End: "10:00", Venue: "Room 3, Mathematics Building", Lecturers: []string{"Dr. Wang"}, ActivityType: "LEC"},
					},
				},
			},
		},
		{
			ID:   "WIA2010",
			Name: "HUMAN COMPUTER INTERACTION",
			Occurrences: []model.Occurrence{
				{
					Number:       "1",
					ActivityType: "LEC/TUT",
					Sessions: []model.Session{
						{Day: model.Tuesday, Start: "13:00", End: "14:00", Venue: "Room 4, Computing Building", Lecturers: []string{"Dr. Taylor"}, ActivityType: "LEC"},
						{Day: model.Thursday, Start: "10:00", End: "11:00", Venue: "Lab 3, Computing Building", Lecturers: []string{"Dr. Taylor"}, ActivityType: "TUT"},
					},
				},
				{
					Number:       "2",
					ActivityType: "ONL",
					Sessions: []model.Session{
						{Day: model.Friday, Start: "15:00", End: "16:00", Venue: model.VenueOnline, Lecturers: []string{"Ms. Rodriguez"}, ActivityType: "ONL"},
					},
				},
			},
		},
	}
}
