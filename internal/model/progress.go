package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnswerSheet 记录每道题的作答：题目ID -> 所选选项(1-4)，nil 表示未作答。
// JSON 序列化后键为字符串形式的题目ID。
type AnswerSheet map[uint]*int

func (a AnswerSheet) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *AnswerSheet) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for AnswerSheet")
	}
}

// UserQuizProgress 存储用户对某套测验的最近一次成绩。
// 每个 (user, quiz) 至多一条记录，重复提交覆盖旧数据。
type UserQuizProgress struct {
	BaseModel
	UserID      uint        `gorm:"index:idx_user_quiz;not null" json:"userId"`
	QuizID      uint        `gorm:"index:idx_user_quiz;not null" json:"quizId"`
	Score       float64     `gorm:"not null" json:"score"` // 百分比 0-100
	CompletedOn time.Time   `gorm:"not null" json:"completedOn"`
	UserAnswers AnswerSheet `gorm:"type:json" json:"userAnswers"`
}

func (UserQuizProgress) TableName() string {
	return "user_quiz_progress"
}
