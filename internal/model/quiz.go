package model

import (
	"time"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title     string    `gorm:"size:120;not null" json:"title"`
	ChapterID uint      `gorm:"index;not null" json:"chapterId"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"` // 分钟，仅作展示，服务端不做限时
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID        uint   `gorm:"index;not null" json:"quizId"`
	QuestionText  string `gorm:"type:text;not null" json:"questionText"`
	Option1       string `gorm:"size:120;not null" json:"option1"`
	Option2       string `gorm:"size:120;not null" json:"option2"`
	Option3       string `gorm:"size:120;not null" json:"option3"`
	Option4       string `gorm:"size:120;not null" json:"option4"`
	CorrectOption int    `gorm:"not null" json:"correctOption"` // 取值 1-4
}

func (Question) TableName() string {
	return "questions"
}

// Options 按 1..4 的顺序返回四个选项文本
func (q *Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// OptionText 按 1 起始的下标取选项文本，下标越界时返回 false
func (q *Question) OptionText(n int) (string, bool) {
	if n < 1 || n > 4 {
		return "", false
	}
	return q.Options()[n-1], true
}
