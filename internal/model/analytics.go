package model

import "time"

// ProgressDetail 管理端进度报表行：进度与用户、科目、测验联查的投影
type ProgressDetail struct {
	FullName    string    `gorm:"column:full_name" json:"fullName"`
	SubjectName string    `gorm:"column:subject_name" json:"subjectName"`
	QuizTitle   string    `gorm:"column:quiz_title" json:"quizTitle"`
	Score       float64   `gorm:"column:score" json:"score"`
	CompletedOn time.Time `gorm:"column:completed_on" json:"completedOn"`
}

// UserPerformance 每个用户的平均分
type UserPerformance struct {
	FullName     string  `gorm:"column:full_name" json:"fullName"`
	AverageScore float64 `gorm:"column:average_score" json:"averageScore"`
}
