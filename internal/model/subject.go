package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `gorm:"size:250" json:"description"`
}

func (Subject) TableName() string {
	return "subjects"
}

// swagger:model Chapter
type Chapter struct {
	BaseModel
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SubjectID   uint   `gorm:"index;not null" json:"subjectId"`
}

func (Chapter) TableName() string {
	return "chapters"
}
